// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string

	// Rate limiting
	RateLimitRPM   int
	RateLimitBurst int

	// Seed the database with sample cars (development only)
	SeedData bool
}

func Load() *Config {
	rpm, _ := strconv.Atoi(getEnv("RATE_LIMIT_RPM", "120"))
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	seed, _ := strconv.ParseBool(getEnv("SEED_DATA", "false"))

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", "car_rental.db"),

		RateLimitRPM:   rpm,
		RateLimitBurst: burst,

		SeedData: seed,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
