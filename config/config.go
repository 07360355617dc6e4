package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort      string
	AppMode      string
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	JWTSecret    string
	JWTExpiryMin int
}

// requiredKeys must be present in the environment; the process refuses to
// start without them.
var requiredKeys = []string{
	"APP_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"JWT_SECRET",
	"JWT_EXPIRY_MIN",
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, exists := os.LookupEnv(key); !exists {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	expiry, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_MIN"))
	if err != nil || expiry <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRY_MIN must be a positive integer, got %q", os.Getenv("JWT_EXPIRY_MIN"))
	}

	return &Config{
		AppPort:      os.Getenv("APP_PORT"),
		AppMode:      getEnv("APP_MODE", "debug"),
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       os.Getenv("DB_PORT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiryMin: expiry,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
