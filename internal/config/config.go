// Package config loads process-wide configuration from the environment once
// at startup. The resulting struct is treated as immutable for the process
// lifetime.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings.
type Config struct {
	Addr        string        `env:"ADDR" envDefault:":8080"`
	DatabaseURL string        `env:"DATABASE_URL"`
	JWTSecret   string        `env:"TASKTRACK_JWT_SECRET"`
	JWTIssuer   string        `env:"TASKTRACK_JWT_ISSUER" envDefault:"tasktrack"`
	JWTAudience string        `env:"TASKTRACK_JWT_AUDIENCE" envDefault:"tasktrack-api"`
	TokenTTL    time.Duration `env:"TASKTRACK_TOKEN_TTL" envDefault:"24h"`
}

// Load parses the environment and validates the result. A missing signing
// secret is an error here so the process fails at startup, not at the first
// login request.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		return nil, errors.New("TASKTRACK_JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &cfg, nil
}
