// File: /repositories/car_repository.go
package repositories

import (
	"gorm.io/gorm"

	"carrental-api/models"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create inserts a new car and fills in its generated id.
func (r *CarRepository) Create(car *models.Car) error {
	return r.db.Create(car).Error
}

// List returns all cars in insertion order.
func (r *CarRepository) List() ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.Order("id").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// UpdateAvailability sets the availability flag unconditionally and reports
// how many rows were touched, so callers can tell an unknown id apart from a
// successful update.
func (r *CarRepository) UpdateAvailability(id uint, available bool) (int64, error) {
	result := r.db.Model(&models.Car{}).Where("id = ?", id).Update("availability", available)
	return result.RowsAffected, result.Error
}

// Delete removes a car. Rental rows referencing it are left in place.
func (r *CarRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Car{}, id)
	return result.RowsAffected, result.Error
}

// GetAvailability returns the availability flag for a car, or
// gorm.ErrRecordNotFound if the id is unknown.
func (r *CarRepository) GetAvailability(id uint) (bool, error) {
	var car models.Car
	if err := r.db.Select("availability").First(&car, id).Error; err != nil {
		return false, err
	}
	return car.Availability, nil
}
