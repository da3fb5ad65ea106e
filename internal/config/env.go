package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	grokKey := os.Getenv("GROK_API_KEY")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	// zero means "leave the stored quota alone"; the migration seeds
	// the default and admins change it at runtime
	guestLimit := 0
	if limitStr := os.Getenv("GUEST_MESSAGE_LIMIT"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil && val > 0 {
			guestLimit = val
		}
	}

	return &Config{
		DatabaseURL:       databaseURL,
		JWTSecret:         jwtSecret,
		Environment:       environment,
		Port:              port,
		MigrationsPath:    migrationsPath,
		GuestMessageLimit: guestLimit,
		GrokAPIKey:        grokKey,
	}, nil
}
