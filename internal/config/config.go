// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Common prefix for every API route (e.g., /api)
	BasePath string `env:"BASE_PATH" envDefault:"/api"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	// Header the hosting platform uses to pass geo metadata.
	GeoHeader string `env:"GEO_HEADER" envDefault:"X-Nf-Geo"`

	// HMAC secret for bearer tokens. Empty keeps the stub resolver.
	JWTSecret string        `env:"JWT_SECRET" envDefault:""`
	// Clock skew tolerated when checking token expiry.
	JWTLeeway time.Duration `env:"JWT_LEEWAY" envDefault:"30s"`

	// API documentation
	DocsTitle   string `env:"DOCS_TITLE" envDefault:"Planet API"`
	DocsVersion string `env:"DOCS_VERSION" envDefault:"1.0.0"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// UsesJWT reports whether bearer tokens are verified as signed JWTs.
func (c *Config) UsesJWT() bool {
	return c.JWTSecret != ""
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("BASE_PATH must start with '/', got %q", c.BasePath)
	}
	if len(c.BasePath) > 1 && strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("BASE_PATH must not end with '/', got %q", c.BasePath)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be positive, got %d", c.MaxRequestBodySize)
	}
	return nil
}

// Load reads an optional .env file, parses environment variables and returns a Config.
// Variables already present in the environment take precedence over .env values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
