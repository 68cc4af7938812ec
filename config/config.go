// Package config loads server configuration from the environment, with
// an optional .env file for local development. Command-line flags in
// cmd/server override whatever is loaded here.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds everything the server needs to start.
type Config struct {
	// DataPath is the snapshot document location.
	DataPath string
	// HTTPAddr enables the HTTP transport when non-empty; empty means
	// MCP over stdio.
	HTTPAddr string
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string
	// SeedOnMissing writes the sample dataset when no document exists.
	SeedOnMissing bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Optional; absence is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{
		DataPath:      getEnv("LEAVE_DATA_PATH", "employee_data.json"),
		HTTPAddr:      getEnv("LEAVE_HTTP_ADDR", ""),
		LogLevel:      getEnv("LEAVE_LOG_LEVEL", "info"),
		SeedOnMissing: getEnvBool("LEAVE_SEED_ON_MISSING", true),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("config: LEAVE_DATA_PATH must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid LEAVE_LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
