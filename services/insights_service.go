// File: /services/insights_service.go
package services

import (
	"carrental-api/models"
	"carrental-api/repositories"
)

// InsightsService exposes the read-only reporting queries behind the charts.
type InsightsService struct {
	rentalRepo *repositories.RentalRepository
}

func NewInsightsService(rentalRepo *repositories.RentalRepository) *InsightsService {
	return &InsightsService{
		rentalRepo: rentalRepo,
	}
}

// RentalsByBrand returns one row per brand with at least one rental. Brands
// with zero rentals are omitted; the chart renderer decides how to show them.
func (s *InsightsService) RentalsByBrand() ([]models.BrandRentals, error) {
	return s.rentalRepo.CountByBrand()
}

// RentalsByMonth returns one row per calendar month (1..12) with at least one
// rental, ascending. Missing months are omitted, not zero-filled; the caller
// renders the full 12-month axis.
func (s *InsightsService) RentalsByMonth() ([]models.MonthRentals, error) {
	return s.rentalRepo.CountByMonth()
}
