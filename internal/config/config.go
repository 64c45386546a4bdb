// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"os"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Addr        string
	WebDir      string
	DatabaseURL string

	// Optional OIDC single sign-on. SSO is enabled when all three OIDC
	// values are set.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads the configuration. DATABASE_URL is required; everything else
// has a default or is optional.
func Load() (Config, error) {
	cfg := Config{
		Addr:             env("ADDR", ":8080"),
		WebDir:           env("WEB_DIR", ""),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}

// SSOEnabled reports whether the OIDC settings are complete.
func (c Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != "" && c.OIDCClientSecret != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
