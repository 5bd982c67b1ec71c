// File: /controllers/rental_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carrental-api/services"
	"carrental-api/utils"
)

type RentalController struct {
	rentals *services.RentalService
}

func NewRentalController(rentals *services.RentalService) *RentalController {
	return &RentalController{rentals: rentals}
}

type RentCarRequest struct {
	CarID      uint   `json:"car_id" binding:"required"`
	RentalDate string `json:"rental_date" binding:"required"` // YYYY-MM-DD
}

func (rc *RentalController) RentCar(c *gin.Context) {
	var req RentCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	rentalDate, err := time.Parse("2006-01-02", req.RentalDate)
	if err != nil {
		utils.SendValidationError(c, "rental_date must be in YYYY-MM-DD format")
		return
	}

	rental, err := rc.rentals.RentCar(req.CarID, rentalDate)
	if err != nil {
		if errors.Is(err, services.ErrCarNotAvailable) {
			utils.SendError(c, http.StatusConflict, "Car not available or invalid car ID")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to rent car")
		return
	}

	c.JSON(http.StatusCreated, rental)
}

func (rc *RentalController) GetRentals(c *gin.Context) {
	rentals, err := rc.rentals.ListRentals()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch rentals")
		return
	}

	c.JSON(http.StatusOK, rentals)
}
