// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the authcore service.
type Config struct {
	HTTPAddr     string        `env:"AUTHCORE_HTTP_ADDR" envDefault:":8382"`
	GRPCAddr     string        `env:"AUTHCORE_GRPC_ADDR" envDefault:":8383"`
	PGDSN        string        `env:"AUTHCORE_PG_DSN"`
	CookieDomain string        `env:"AUTHCORE_COOKIE_DOMAIN"`
	SessionTTL   time.Duration `env:"AUTHCORE_SESSION_TTL" envDefault:"3h"`
	// ServiceName is the service segment the HTTP middleware checks
	// permission codes against for the service's own routes.
	ServiceName string `env:"AUTHCORE_SERVICE_NAME" envDefault:"perm"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
