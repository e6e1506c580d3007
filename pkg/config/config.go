// Package config holds the runtime configuration for the maps-routes server.
//
// Configuration is resolved in three layers: built-in defaults, an optional
// YAML file, and finally environment variables. The resolved value is passed
// explicitly into the clients that need it; nothing below this package reads
// the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by Load.
const (
	EnvAPIKey        = "GOOGLE_MAPS_API_KEY"
	EnvDefaultOrigin = "DEFAULT_ORIGIN"
)

// RateLimit describes a request budget for one external service.
type RateLimit struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Burst is the maximum burst size.
	Burst int `yaml:"burst"`
}

// Config is the resolved server configuration.
type Config struct {
	// APIKey is the Google Maps API credential. Network calls fail without
	// it; location validation silently assumes success. It is never logged.
	APIKey string `yaml:"api_key"`

	// DefaultOrigin is the origin used for free-text queries that do not
	// name one.
	DefaultOrigin string `yaml:"default_origin"`

	// ValidateTimeout bounds the opportunistic geocoding check used to
	// validate user-supplied locations.
	ValidateTimeout time.Duration `yaml:"validate_timeout"`

	// RequestTimeout bounds geocoding, places and directions requests.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Per-service rate limits.
	GeocodeLimit    RateLimit `yaml:"geocode_limit"`
	PlacesLimit     RateLimit `yaml:"places_limit"`
	DirectionsLimit RateLimit `yaml:"directions_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultOrigin:   "Chicago, IL",
		ValidateTimeout: 5 * time.Second,
		RequestTimeout:  10 * time.Second,
		GeocodeLimit:    RateLimit{RequestsPerSecond: 10, Burst: 5},
		PlacesLimit:     RateLimit{RequestsPerSecond: 10, Burst: 5},
		DirectionsLimit: RateLimit{RequestsPerSecond: 10, Burst: 5},
	}
}

// Load resolves the configuration from defaults, an optional YAML file and
// the environment. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvDefaultOrigin); v != "" {
		cfg.DefaultOrigin = v
	}

	return cfg.withDefaults(), nil
}

// withDefaults backfills zero values left by a partial config file.
func (c *Config) withDefaults() *Config {
	d := Default()
	if c.DefaultOrigin == "" {
		c.DefaultOrigin = d.DefaultOrigin
	}
	if c.ValidateTimeout <= 0 {
		c.ValidateTimeout = d.ValidateTimeout
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if c.GeocodeLimit.RequestsPerSecond <= 0 {
		c.GeocodeLimit = d.GeocodeLimit
	}
	if c.PlacesLimit.RequestsPerSecond <= 0 {
		c.PlacesLimit = d.PlacesLimit
	}
	if c.DirectionsLimit.RequestsPerSecond <= 0 {
		c.DirectionsLimit = d.DirectionsLimit
	}
	return c
}
