// Package rawg provides a client for the RAWG video game database API.
package rawg

import (
	"os"
	"time"
)

// Config holds configuration for the RAWG API client.
type Config struct {
	RAWGAPIKey string        // API key for authentication
	BaseURL    string        // Base URL for the API (e.g., "https://api.rawg.io/api")
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads RAWG configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("RAWG_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.rawg.io/api"
	}
	return Config{
		RAWGAPIKey: os.Getenv("RAWG_API_KEY"),
		BaseURL:    baseURL,
		Timeout:    10 * time.Second,
	}
}
