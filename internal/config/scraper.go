package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScraperConfig holds the scraper's YAML-file configuration. Unlike the API
// server, which is configured entirely by environment, the scraper carries a
// department list that is unwieldy as an env var.
type ScraperConfig struct {
	// Departments is the list of department codes to scrape (e.g. "ACCY").
	Departments []string `yaml:"departments"`

	// Year is the 4-digit catalog year, e.g. "2025".
	Year string `yaml:"year"`

	// Term is the catalog term label: fall, spring, or summer.
	Term string `yaml:"term"`

	// CatalogURL is the base URL of the course catalog.
	CatalogURL string `yaml:"catalog_url"`

	// DataDir is the root directory for partition and master files.
	// Defaults to "./data".
	DataDir string `yaml:"data_dir"`

	// DatabaseURL is the Postgres connection string. Optional: when empty
	// (and DATABASE_URL is unset), merged records are written to the master
	// file only. Falls back to the DATABASE_URL environment variable.
	DatabaseURL string `yaml:"database_url"`

	// RefreshCron is a cron-style schedule (e.g. "0 5 * * *") for periodic
	// re-scrapes. Empty means run once and exit.
	RefreshCron string `yaml:"refresh"`

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string `yaml:"log_level"`
}

// LoadScraper reads and validates the scraper configuration from a YAML file.
func LoadScraper(path string) (ScraperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScraperConfig{}, fmt.Errorf("config.LoadScraper: %w", err)
	}

	var cfg ScraperConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScraperConfig{}, fmt.Errorf("config.LoadScraper: parse %s: %w", path, err)
	}
	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return ScraperConfig{}, fmt.Errorf("config.LoadScraper: %w", err)
	}
	return cfg, nil
}

// normalize fills in missing values with defaults so partially-filled
// configs still behave correctly.
func (c *ScraperConfig) normalize() {
	for i, dept := range c.Departments {
		c.Departments[i] = strings.ToUpper(strings.TrimSpace(dept))
	}
	c.Term = strings.ToLower(strings.TrimSpace(c.Term))
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *ScraperConfig) validate() error {
	if len(c.Departments) == 0 {
		return fmt.Errorf("departments must not be empty")
	}
	if len(c.Year) != 4 || strings.Trim(c.Year, "0123456789") != "" {
		return fmt.Errorf("year must be a 4-digit year, got %q", c.Year)
	}
	switch c.Term {
	case "fall", "spring", "summer":
	default:
		return fmt.Errorf("term must be fall, spring, or summer, got %q", c.Term)
	}
	if c.CatalogURL == "" {
		return fmt.Errorf("catalog_url is required")
	}
	return nil
}
