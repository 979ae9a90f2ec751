package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// FallbackJWTSecret is used when JWT_SECRET is unset. It is a testing-only
// value for local runs and must never be relied on in a real deployment.
const FallbackJWTSecret = "supersecretoquenadiemasconocera"

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	LogLevel     string
	JWTSecret    string
	// UsingFallbackSecret is true when JWT_SECRET was not provided.
	UsingFallbackSecret bool
	TokenTTL            time.Duration
}

// Load reads configuration from the environment (and a .env file when
// present) or sets defaults.
func Load() (*Config, error) {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	// An empty JWT_SECRET counts as unset.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = FallbackJWTSecret
	}

	return &Config{
		ServerPort:          port,
		DatabasePath:        getEnv("DATABASE_PATH", "./pizzeria.db"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		JWTSecret:           secret,
		UsingFallbackSecret: secret == FallbackJWTSecret,
		TokenTTL:            time.Hour,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
