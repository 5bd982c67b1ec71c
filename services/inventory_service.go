// File: /services/inventory_service.go
package services

import (
	"fmt"
	"strings"

	"carrental-api/models"
	"carrental-api/repositories"
)

// InventoryService covers administrative CRUD over the car fleet.
type InventoryService struct {
	carRepo *repositories.CarRepository
}

func NewInventoryService(carRepo *repositories.CarRepository) *InventoryService {
	return &InventoryService{
		carRepo: carRepo,
	}
}

// AddCar creates a car. Brand and model must be non-blank; year range is
// enforced at the presentation boundary, not here.
func (s *InventoryService) AddCar(brand, model string, year int, available bool) (*models.Car, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	if brand == "" {
		return nil, fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrValidation)
	}

	car := &models.Car{
		Brand:        brand,
		Model:        model,
		Year:         year,
		Availability: available,
	}
	if err := s.carRepo.Create(car); err != nil {
		return nil, err
	}

	return car, nil
}

// ListCars returns the whole fleet in insertion order.
func (s *InventoryService) ListCars() ([]models.Car, error) {
	return s.carRepo.List()
}

// SetAvailability is the admin override. It bypasses the rental workflow
// entirely: marking a rented car available again is allowed and leaves its
// rental history untouched.
func (s *InventoryService) SetAvailability(id uint, available bool) error {
	rows, err := s.carRepo.UpdateAvailability(id, available)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCarNotFound
	}
	return nil
}

// RemoveCar deletes a car unconditionally. Existing rental records keep
// their car_id as a dangling reference.
func (s *InventoryService) RemoveCar(id uint) error {
	rows, err := s.carRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCarNotFound
	}
	return nil
}
