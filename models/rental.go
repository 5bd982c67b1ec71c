// File: /models/rental.go
package models

import (
	"time"
)

// Rental is an immutable log entry: one row per successful rent operation.
// CarID is a logical reference only; deleting a car leaves its rentals behind.
type Rental struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CarID      uint      `json:"car_id" gorm:"not null;index"`
	RentalDate time.Time `json:"rental_date" gorm:"not null;type:date"`
	CreatedAt  time.Time `json:"created_at"`
}

// BrandRentals is one row of the rentals-by-brand report.
type BrandRentals struct {
	Brand string `json:"brand"`
	Total int64  `json:"total"`
}

// MonthRentals is one row of the rentals-by-month report. Month is 1..12;
// months with no rentals are omitted, not zero-filled.
type MonthRentals struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}
