// Copyright (c) 2026 Lemraya. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB pool, verifier) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Lemraya API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Hosted database (PostgreSQL connection string from the provider)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Token verification. When AUTH_JWT_SECRET is set, access tokens are
	// validated locally; otherwise AUTH_URL + AUTH_API_KEY select the
	// provider's remote verification endpoint.
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`
	AuthURL       string `env:"AUTH_URL"`
	AuthAPIKey    string `env:"AUTH_API_KEY"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.AuthJWTSecret == "" && (cfg.AuthURL == "" || cfg.AuthAPIKey == "") {
		return nil, fmt.Errorf("config: either AUTH_JWT_SECRET or AUTH_URL + AUTH_API_KEY must be set")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraAllowedOrigins returns the additional CORS origins from EXTRA_ORIGINS
// (comma-separated), such as preview deployments of the frontend.
func (c *Config) ExtraAllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
