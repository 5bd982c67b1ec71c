// File: /models/car.go
package models

import (
	"time"
)

// Availability status labels used by the presentation layer.
const (
	StatusAvailable    = "Available"
	StatusNotAvailable = "Not Available"
)

type Car struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Brand        string    `json:"brand" gorm:"not null;size:100"`
	Model        string    `json:"model" gorm:"not null;size:100"`
	Year         int       `json:"year" gorm:"not null"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatusLabel maps the availability flag to its display label.
func (c *Car) StatusLabel() string {
	if c.Availability {
		return StatusAvailable
	}
	return StatusNotAvailable
}

// AvailabilityFromStatus maps a display label back to the flag.
// Anything other than the "Available" label counts as not available.
func AvailabilityFromStatus(status string) bool {
	return status == StatusAvailable
}
