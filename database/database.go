// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carrental-api/models"
)

// Initialize opens a GORM handle for the configured driver. The default is a
// local SQLite file; production deployments point DATABASE_DRIVER=mysql at a
// MySQL DSN instead.
func Initialize(driver, databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(databaseURL), cfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(databaseURL), cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.Car{},
		&models.Rental{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better query performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Brand report joins rentals to cars and groups on brand
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_cars_brand ON cars(brand)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for cars brand: %v\n", err)
	}

	// Month report scans rental_date
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_rentals_rental_date ON rentals(rental_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for rentals rental_date: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	// Check if we already have cars
	var carCount int64
	db.Model(&models.Car{}).Count(&carCount)

	if carCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testCars := []models.Car{
		{Brand: "Toyota", Model: "Corolla", Year: 2021, Availability: true},
		{Brand: "Toyota", Model: "RAV4", Year: 2023, Availability: true},
		{Brand: "Honda", Model: "Civic", Year: 2019, Availability: true},
		{Brand: "Ford", Model: "Focus", Year: 2017, Availability: false},
	}

	for i := range testCars {
		if err := db.Create(&testCars[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create test car %s %s: %v\n", testCars[i].Brand, testCars[i].Model, err)
		}
	}

	// One rental against the unavailable Ford so the insight charts have data
	rental := models.Rental{
		CarID:      testCars[len(testCars)-1].ID,
		RentalDate: time.Date(time.Now().Year(), time.January, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&rental).Error; err != nil {
		fmt.Printf("Warning: Could not create test rental: %v\n", err)
	}

	fmt.Println("Database seeded with test data")
	return nil
}
