// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	CatalogURL    string `env:"BOOKSTORE_CATALOG_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"BOOKSTORE_SESSION_SECRET,required"`
	ServerHost    string `env:"BOOKSTORE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"BOOKSTORE_SERVER_PORT" envDefault:"3000"`
	Env           string `env:"BOOKSTORE_ENV" envDefault:"development"`
	LogLevel      string `env:"BOOKSTORE_LOG_LEVEL" envDefault:"info"`

	// Back-office credentials. Defaults to the demo pair when unset.
	AdminUsername string `env:"BOOKSTORE_ADMIN_USERNAME"`
	AdminPassword string `env:"BOOKSTORE_ADMIN_PASSWORD"`

	// CatalogTimeout is the per-request timeout for catalog API calls,
	// in seconds.
	CatalogTimeout int `env:"BOOKSTORE_CATALOG_TIMEOUT" envDefault:"15"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("BOOKSTORE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	cfg.CatalogURL = strings.TrimRight(cfg.CatalogURL, "/")
	if cfg.CatalogURL == "" {
		return nil, fmt.Errorf("BOOKSTORE_CATALOG_URL must not be empty")
	}

	if cfg.CatalogTimeout < 1 {
		return nil, fmt.Errorf("BOOKSTORE_CATALOG_TIMEOUT must be at least 1 second, got %d", cfg.CatalogTimeout)
	}

	return cfg, nil
}
