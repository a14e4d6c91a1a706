// Package config provides configuration management for the plan evaluator's
// CLI and HTTP surfaces.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide configuration loaded from the environment.
type Config struct {
	Logging LoggingConfig
	Server  ServerConfig
	Seed    int64
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // "json" or "text"
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int
	Host string
}

// Load reads a .env file if present, then environment variables, applying
// defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Server: ServerConfig{
			Port: getEnvInt("EVAL_SERVER_PORT", 8585),
			Host: getEnv("EVAL_SERVER_HOST", "0.0.0.0"),
		},
		Seed: getEnvInt64("EVAL_SEED", 1),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
