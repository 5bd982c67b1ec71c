// File: /controllers/insights_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carrental-api/services"
	"carrental-api/utils"
)

type InsightsController struct {
	insights *services.InsightsService
}

func NewInsightsController(insights *services.InsightsService) *InsightsController {
	return &InsightsController{insights: insights}
}

func (ic *InsightsController) GetRentalsByBrand(c *gin.Context) {
	rows, err := ic.insights.RentalsByBrand()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch rental insights")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (ic *InsightsController) GetRentalsByMonth(c *gin.Context) {
	rows, err := ic.insights.RentalsByMonth()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch rental insights")
		return
	}

	c.JSON(http.StatusOK, rows)
}
