// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"carrental-api/config"
	"carrental-api/database"
	"carrental-api/middleware"
	"carrental-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if cfg.SeedData {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Request id + logging middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Recovery and error handling middleware
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Start server
	log.Printf("Starting Car Rental API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/api/v1/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
