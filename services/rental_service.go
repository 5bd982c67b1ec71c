// File: /services/rental_service.go
package services

import (
	"errors"
	"time"

	"carrental-api/models"
	"carrental-api/repositories"
)

// RentalService owns the one state transition in the system: claiming an
// available car and logging the rental.
type RentalService struct {
	rentalRepo *repositories.RentalRepository
}

func NewRentalService(rentalRepo *repositories.RentalRepository) *RentalService {
	return &RentalService{
		rentalRepo: rentalRepo,
	}
}

// RentCar rents the car for the given date. The availability check, the flag
// flip and the rental insert happen in one database transaction, so of two
// concurrent attempts on the same car exactly one succeeds and the other gets
// ErrCarNotAvailable. An unknown car id reports ErrCarNotAvailable as well.
func (s *RentalService) RentCar(carID uint, rentalDate time.Time) (*models.Rental, error) {
	rental, err := s.rentalRepo.RentCar(carID, rentalDate)
	if err != nil {
		if errors.Is(err, repositories.ErrCarNotAvailable) {
			return nil, ErrCarNotAvailable
		}
		return nil, err
	}
	return rental, nil
}

// ListRentals returns the rental log, newest first.
func (s *RentalService) ListRentals() ([]models.Rental, error) {
	return s.rentalRepo.List()
}
