// File: /utils/validators.go
package utils

import (
	"carrental-api/models"
)

// IsValidStatus accepts exactly the two display labels for the
// availability flag.
func IsValidStatus(status string) bool {
	return status == models.StatusAvailable || status == models.StatusNotAvailable
}

// IsValidYear bounds the model year to the range the fleet can contain.
func IsValidYear(year int) bool {
	return year >= 1990 && year <= 2030
}
