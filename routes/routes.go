// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"carrental-api/config"
	"carrental-api/controllers"
	"carrental-api/middleware"
	"carrental-api/repositories"
	"carrental-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	carRepo := repositories.NewCarRepository(db)
	rentalRepo := repositories.NewRentalRepository(db)

	// Services
	inventoryService := services.NewInventoryService(carRepo)
	rentalService := services.NewRentalService(rentalRepo)
	insightsService := services.NewInsightsService(rentalRepo)

	// Controllers
	carController := controllers.NewCarController(inventoryService)
	rentalController := controllers.NewRentalController(rentalService)
	insightsController := controllers.NewInsightsController(insightsService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.RateLimitRPM, cfg.RateLimitBurst))
	v1.Use(middleware.ValidateJSON())
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})

		// Car routes
		cars := v1.Group("/cars")
		{
			cars.GET("/", carController.GetCars)
			cars.POST("/", carController.CreateCar)
			cars.PUT("/:id/availability", carController.UpdateCarAvailability)
			cars.DELETE("/:id", carController.DeleteCar)
		}

		// Rental routes
		rentals := v1.Group("/rentals")
		{
			rentals.GET("/", rentalController.GetRentals)
			rentals.POST("/", rentalController.RentCar)
		}

		// Insights routes
		insights := v1.Group("/insights")
		{
			insights.GET("/rentals-by-brand", insightsController.GetRentalsByBrand)
			insights.GET("/rentals-by-month", insightsController.GetRentalsByMonth)
		}
	}
}

// SetupCORS allows any front end (web UI, CLI, dashboard) to call the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
