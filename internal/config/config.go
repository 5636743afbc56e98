// Package config loads configuration for the two binaries: environment
// variables for the API server (Load) and a YAML file for the scraper
// (LoadScraper).
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the API server's configuration, populated by Load.
type Config struct {
	// Port is the TCP port the HTTP listener binds. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for the merged
	// room-usage store. Required.
	DatabaseURL string

	// LogLevel is the minimum slog level: debug, info, warn or error.
	// Defaults to "info".
	LogLevel string

	// CORSOrigins lists the origins allowed to call the API from a browser.
	// Defaults to the room finder frontend's dev server on
	// http://localhost:5173; set CORS_ORIGINS (comma-separated) in
	// deployments that serve the frontend elsewhere.
	CORSOrigins []string
}

// Load reads the API server configuration from the environment.
// DATABASE_URL is the only required variable.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("required environment variable DATABASE_URL is not set")
	}

	return cfg, nil
}

// getEnv returns the named environment variable, or fallback when it is
// unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
