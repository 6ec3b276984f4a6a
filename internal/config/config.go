package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	MaxWorkers   int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logging configuration
	LogFormat string
	LogLevel  string

	// Recognition configuration
	OCRLanguages []string
	MaxDimension int

	// Product resolution configuration
	DatabaseURL       string
	ProductCatalogURL string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		MaxWorkers:   getEnvInt("MAX_WORKERS", 5),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 60)) * time.Second,

		// Logging configuration
		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),

		// Recognition configuration
		OCRLanguages: getEnvStringSlice("OCR_LANGUAGES", []string{"por", "eng"}),
		MaxDimension: getEnvInt("MAX_IMAGE_DIMENSION", 1024),

		// Product resolution configuration
		DatabaseURL:       os.Getenv("POSTGRES_DB_URL"),
		ProductCatalogURL: getEnvString("PRODUCT_CATALOG_URL", ""),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.DatabaseURL == "" {
		log.Println("Warning: No database URL provided. Product lookups will use the in-memory store.")
	}

	if len(config.OCRLanguages) == 0 {
		log.Println("Warning: Empty OCR language list. Falling back to por+eng.")
		config.OCRLanguages = []string{"por", "eng"}
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
