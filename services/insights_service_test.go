// File: /services/insights_service_test.go
package services

import (
	"testing"
	"time"

	"carrental-api/repositories"
)

func newInsightsFixture(t *testing.T) (*InsightsService, *RentalService, *InventoryService) {
	t.Helper()
	db := newTestDB(t)
	rentalRepo := repositories.NewRentalRepository(db)
	return NewInsightsService(rentalRepo),
		NewRentalService(rentalRepo),
		NewInventoryService(repositories.NewCarRepository(db))
}

func TestRentalsByBrand(t *testing.T) {
	insights, rentals, inventory := newInsightsFixture(t)

	toyota1, _ := inventory.AddCar("Toyota", "Corolla", 2021, true)
	toyota2, _ := inventory.AddCar("Toyota", "RAV4", 2023, true)
	honda, _ := inventory.AddCar("Honda", "Civic", 2019, true)
	if _, err := inventory.AddCar("Ford", "Focus", 2017, true); err != nil {
		t.Fatalf("add car: %v", err)
	}

	d := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	for _, car := range []uint{toyota1.ID, toyota2.ID, honda.ID} {
		if _, err := rentals.RentCar(car, d); err != nil {
			t.Fatalf("rent car %d: %v", car, err)
		}
	}

	rows, err := insights.RentalsByBrand()
	if err != nil {
		t.Fatalf("rentals by brand: %v", err)
	}

	totals := map[string]int64{}
	var sum int64
	for _, row := range rows {
		totals[row.Brand] = row.Total
		sum += row.Total
	}
	if totals["Toyota"] != 2 || totals["Honda"] != 1 {
		t.Fatalf("unexpected totals: %v", totals)
	}
	if _, present := totals["Ford"]; present {
		t.Fatalf("expected zero-rental brand to be omitted, got %v", totals)
	}
	if sum != 3 {
		t.Fatalf("expected counts to sum to total rentals, got %d", sum)
	}
}

func TestRentalsByMonthOmitsEmptyMonths(t *testing.T) {
	insights, rentals, inventory := newInsightsFixture(t)

	dates := []time.Time{
		time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		car, err := inventory.AddCar("Toyota", "Corolla", 2021, true)
		if err != nil {
			t.Fatalf("add car: %v", err)
		}
		if _, err := rentals.RentCar(car.ID, d); err != nil {
			t.Fatalf("rent: %v", err)
		}
	}

	rows, err := insights.RentalsByMonth()
	if err != nil {
		t.Fatalf("rentals by month: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected february to be omitted, got %v", rows)
	}
	if rows[0].Month != 1 || rows[0].Total != 2 {
		t.Fatalf("expected (1, 2), got (%d, %d)", rows[0].Month, rows[0].Total)
	}
	if rows[1].Month != 3 || rows[1].Total != 1 {
		t.Fatalf("expected (3, 1), got (%d, %d)", rows[1].Month, rows[1].Total)
	}
}

func TestInsightsEmptyDatabase(t *testing.T) {
	insights, _, _ := newInsightsFixture(t)

	brands, err := insights.RentalsByBrand()
	if err != nil {
		t.Fatalf("rentals by brand: %v", err)
	}
	if len(brands) != 0 {
		t.Fatalf("expected no brand rows, got %v", brands)
	}

	months, err := insights.RentalsByMonth()
	if err != nil {
		t.Fatalf("rentals by month: %v", err)
	}
	if len(months) != 0 {
		t.Fatalf("expected no month rows, got %v", months)
	}
}
