// File: /services/errors.go
package services

import (
	"errors"
)

var (
	// ErrValidation means caller-supplied input failed a precondition.
	// The presentation layer re-prompts; no state changed.
	ErrValidation = errors.New("validation failed")

	// ErrCarNotFound means an update or delete referenced an unknown car id.
	ErrCarNotFound = errors.New("car not found")

	// ErrCarNotAvailable means a rent attempt hit a nonexistent or
	// already-rented car.
	ErrCarNotAvailable = errors.New("car not available")
)
