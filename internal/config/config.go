// Package config loads application configuration from environment
// variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr means
// no Redis: callers fall back to the in-memory repository.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
	}
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
