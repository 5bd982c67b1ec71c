// File: /controllers/car_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carrental-api/models"
	"carrental-api/services"
	"carrental-api/utils"
)

type CarController struct {
	inventory *services.InventoryService
}

func NewCarController(inventory *services.InventoryService) *CarController {
	return &CarController{inventory: inventory}
}

type CreateCarRequest struct {
	Brand  string `json:"brand" binding:"required"`
	Model  string `json:"model" binding:"required"`
	Year   int    `json:"year" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	Status string `json:"status" binding:"required"`
}

// CarResponse is the list/create payload: the stored row plus the display
// label front ends show instead of the raw flag.
type CarResponse struct {
	models.Car
	Status string `json:"status"`
}

func toCarResponse(car models.Car) CarResponse {
	return CarResponse{Car: car, Status: car.StatusLabel()}
}

func (cc *CarController) GetCars(c *gin.Context) {
	cars, err := cc.inventory.ListCars()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}

	response := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		response = append(response, toCarResponse(car))
	}

	c.JSON(http.StatusOK, response)
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	// Validate input ranges
	if !utils.IsValidYear(req.Year) {
		utils.SendValidationError(c, "year must be between 1990 and 2030")
		return
	}
	if !utils.IsValidStatus(req.Status) {
		utils.SendValidationError(c, "status must be 'Available' or 'Not Available'")
		return
	}

	car, err := cc.inventory.AddCar(req.Brand, req.Model, req.Year, models.AvailabilityFromStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.SendValidationError(c, err.Error())
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create car")
		return
	}

	c.JSON(http.StatusCreated, toCarResponse(*car))
}

func (cc *CarController) UpdateCarAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidStatus(req.Status) {
		utils.SendValidationError(c, "status must be 'Available' or 'Not Available'")
		return
	}

	err := cc.inventory.SetAvailability(id, models.AvailabilityFromStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			utils.SendError(c, http.StatusNotFound, "Car not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update car")
		return
	}

	utils.SendSuccess(c, "Car status updated successfully", nil)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.inventory.RemoveCar(id); err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			utils.SendError(c, http.StatusNotFound, "Car not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete car")
		return
	}

	utils.SendSuccess(c, "Car deleted successfully", nil)
}

// parseID reads the :id path param. Responds with 400 and returns false when
// it is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.SendValidationError(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
