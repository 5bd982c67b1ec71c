// File: /services/inventory_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carrental-api/models"
	"carrental-api/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A single connection keeps every goroutine on the same in-memory
	// database and serializes concurrent transactions.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Car{}, &models.Rental{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newInventoryService(t *testing.T) (*InventoryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewInventoryService(repositories.NewCarRepository(db)), db
}

func TestAddCarAndList(t *testing.T) {
	svc, _ := newInventoryService(t)

	created, err := svc.AddCar("Toyota", "Corolla", 2021, true)
	if err != nil {
		t.Fatalf("add car: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	cars, err := svc.ListCars()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cars) != 1 {
		t.Fatalf("expected 1 car, got %d", len(cars))
	}
	car := cars[0]
	if car.Brand != "Toyota" || car.Model != "Corolla" || car.Year != 2021 || !car.Availability {
		t.Fatalf("round trip mismatch: %+v", car)
	}
}

func TestAddCarValidation(t *testing.T) {
	svc, _ := newInventoryService(t)

	if _, err := svc.AddCar("", "Corolla", 2021, true); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty brand, got %v", err)
	}
	if _, err := svc.AddCar("Toyota", "   ", 2021, true); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank model, got %v", err)
	}

	cars, err := svc.ListCars()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cars) != 0 {
		t.Fatalf("expected no cars after failed validation, got %d", len(cars))
	}
}

func TestSetAvailabilityUnknownID(t *testing.T) {
	svc, _ := newInventoryService(t)

	if err := svc.SetAvailability(123, true); !errors.Is(err, ErrCarNotFound) {
		t.Fatalf("expected ErrCarNotFound, got %v", err)
	}
}

func TestRemoveCarUnknownID(t *testing.T) {
	svc, _ := newInventoryService(t)

	if err := svc.RemoveCar(123); !errors.Is(err, ErrCarNotFound) {
		t.Fatalf("expected ErrCarNotFound, got %v", err)
	}
}

// Admin override: re-opening a rented car succeeds and the rental log is
// untouched. There is no return workflow, this is the only escape hatch.
func TestSetAvailabilityOverridesOpenRental(t *testing.T) {
	svc, db := newInventoryService(t)
	rentals := NewRentalService(repositories.NewRentalRepository(db))

	car, err := svc.AddCar("Toyota", "Corolla", 2021, true)
	if err != nil {
		t.Fatalf("add car: %v", err)
	}
	if _, err := rentals.RentCar(car.ID, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("rent: %v", err)
	}

	if err := svc.SetAvailability(car.ID, true); err != nil {
		t.Fatalf("admin override failed: %v", err)
	}

	var rentalCount int64
	db.Model(&models.Rental{}).Where("car_id = ?", car.ID).Count(&rentalCount)
	if rentalCount != 1 {
		t.Fatalf("expected rental record to survive override, got %d rows", rentalCount)
	}

	cars, _ := svc.ListCars()
	if len(cars) != 1 || !cars[0].Availability {
		t.Fatalf("expected car available again after override")
	}
}

func TestRemoveCarLeavesRentalHistory(t *testing.T) {
	svc, db := newInventoryService(t)
	rentals := NewRentalService(repositories.NewRentalRepository(db))

	car, err := svc.AddCar("Honda", "Civic", 2019, true)
	if err != nil {
		t.Fatalf("add car: %v", err)
	}
	if _, err := rentals.RentCar(car.ID, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("rent: %v", err)
	}

	if err := svc.RemoveCar(car.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	var rentalCount int64
	db.Model(&models.Rental{}).Count(&rentalCount)
	if rentalCount != 1 {
		t.Fatalf("expected orphaned rental row to remain, got %d", rentalCount)
	}
}
