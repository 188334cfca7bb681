package server

import (
	"fmt"
	"os"
	"time"
)

// Config holds the HTTP service configuration
type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	return cfg, nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
