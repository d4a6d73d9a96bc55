// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port        int
	DatabaseURL string
}

// NewServerConfig creates a server configuration from environment variables.
// It reads DATABASE_URL (required) and PORT (default: 8080).
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // default
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	config := &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}
