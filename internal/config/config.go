package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"goexchange/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds the HTTP API settings
type ServerConfig struct {
	Port string
}

// DataConfig holds extract/clean settings
type DataConfig struct {
	RawDataDir string
	// Institutions filtered out during cleaning (partner networks that
	// are not direct exchange schools).
	ExcludedInstitutions []string
	// Workers bounds concurrent file processing in the ETL run.
	Workers int
}

// LoggingConfig holds log verbosity
type LoggingConfig struct {
	Level string
}

// Load reads configuration from a .env file (when present) and the
// environment, then validates it. RequireDatabase is false for dry runs.
func Load(requireDatabase bool) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			RawDataDir:           getEnvOrDefault("RAW_DATA_DIR", "data/raw"),
			ExcludedInstitutions: getEnvListOrDefault("EXCLUDED_INSTITUTIONS", []string{"SAF", "ACUCA"}),
			Workers:              getEnvIntOrDefault("ETL_WORKERS", 4),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	if requireDatabase && cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	if cfg.Data.Workers < 1 {
		cfg.Data.Workers = 1
	}
	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
