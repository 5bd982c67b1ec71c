// File: /repositories/rental_repository.go
package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"carrental-api/models"
)

// ErrCarNotAvailable is returned by RentCar when the car does not exist or is
// already rented out. The two cases are indistinguishable to the renter.
var ErrCarNotAvailable = errors.New("car not available")

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// RentCar claims a car and records the rental as one atomic unit. The claim
// is a conditional update on the availability flag, so two concurrent
// attempts on the same car cannot both succeed: the first one to commit flips
// the flag, the second touches zero rows and rolls back with
// ErrCarNotAvailable.
func (r *RentalRepository) RentCar(carID uint, rentalDate time.Time) (*models.Rental, error) {
	rental := &models.Rental{
		CarID:      carID,
		RentalDate: rentalDate,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&models.Car{}).
			Where("id = ? AND availability = ?", carID, true).
			Update("availability", false)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrCarNotAvailable
		}

		return tx.Create(rental).Error
	})
	if err != nil {
		return nil, err
	}

	return rental, nil
}

// List returns all rental records, newest first.
func (r *RentalRepository) List() ([]models.Rental, error) {
	var rentals []models.Rental
	if err := r.db.Order("id DESC").Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

// CountByBrand counts rentals per brand via a join to cars. Brands with no
// rentals do not appear, and rentals whose car has been deleted drop out of
// the join.
func (r *RentalRepository) CountByBrand() ([]models.BrandRentals, error) {
	var rows []models.BrandRentals
	err := r.db.Model(&models.Rental{}).
		Select("cars.brand AS brand, COUNT(*) AS total").
		Joins("JOIN cars ON cars.id = rentals.car_id").
		Group("cars.brand").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByMonth counts rentals per calendar month of rental_date, ascending.
// Months with no rentals are omitted. The month extraction differs per
// dialect, so the expression is picked off the connected driver.
func (r *RentalRepository) CountByMonth() ([]models.MonthRentals, error) {
	monthExpr := "MONTH(rental_date)"
	if r.db.Dialector.Name() == "sqlite" {
		monthExpr = "CAST(strftime('%m', rental_date) AS INTEGER)"
	}

	var rows []models.MonthRentals
	err := r.db.Model(&models.Rental{}).
		Select(monthExpr + " AS month, COUNT(*) AS total").
		Group(monthExpr).
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
