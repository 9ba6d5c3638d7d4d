// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kouden-ledger/backend/internal/money"
)

type Config struct {
	// HTTP server
	APIURL string
	Port   string

	// Database. If DatabaseURL is set, PostgreSQL is used,
	// otherwise an SQLite database in DataDir.
	DatabaseURL string
	DataDir     string

	// Locale used to render amounts, e.g. "ja-JP"
	CurrencyLocale string
}

func Load() *Config {
	return &Config{
		APIURL:         os.Getenv("API_URL"),
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DataDir:        getEnv("DATA_DIR", "data"),
		CurrencyLocale: getEnv("CURRENCY_LOCALE", money.DefaultLocale),
	}
}

// Validate validates the configuration and returns an error listing
// every problem found.
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "environment variable API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	} else if !u.IsAbs() || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DatabaseURL != "" {
		if u, err := url.Parse(c.DatabaseURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid DATABASE_URL: %v", err))
		} else if u.Scheme != "postgres" && u.Scheme != "postgresql" {
			errors = append(errors, fmt.Sprintf("invalid DATABASE_URL scheme '%s': must be 'postgres' or 'postgresql'", u.Scheme))
		}
	} else if c.DataDir == "" {
		errors = append(errors, "DATA_DIR cannot be empty when DATABASE_URL is not set")
	}

	if _, err := money.NewFormatter(c.CurrencyLocale); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API_URL. Call Validate first.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// DSN returns the data source name for models.Connect.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return filepath.Join(c.DataDir, "gorm.db")
}

// Formatter returns the formatter for the configured currency locale.
func (c *Config) Formatter() (money.Formatter, error) {
	return money.NewFormatter(c.CurrencyLocale)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
