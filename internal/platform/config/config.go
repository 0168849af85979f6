// Package config loads service configuration from the environment so main
// stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration for the verid server.
type Config struct {
	// HTTP server
	Addr            string        `envconfig:"VERID_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"VERID_SHUTDOWN_TIMEOUT" default:"10s"`

	// Logging
	LogLevel string `envconfig:"VERID_LOG_LEVEL" default:"info"`

	// Redis, used for distributed rate limiting. Empty means not configured;
	// the limiter falls back to its in-memory store.
	RedisURL string `envconfig:"VERID_REDIS_URL"`

	// Rate limiting
	RateLimitDisabled  bool          `envconfig:"VERID_RATE_LIMIT_DISABLED"`
	RateLimitPerWindow int           `envconfig:"VERID_RATE_LIMIT_PER_WINDOW" default:"120"`
	RateLimitWindow    time.Duration `envconfig:"VERID_RATE_LIMIT_WINDOW" default:"1m"`

	// Audit
	AuditBufferSize int `envconfig:"VERID_AUDIT_BUFFER_SIZE" default:"256"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("VERID_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	if c.RateLimitPerWindow < 1 {
		return fmt.Errorf("VERID_RATE_LIMIT_PER_WINDOW must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("VERID_RATE_LIMIT_WINDOW must be positive")
	}
	if c.AuditBufferSize < 1 {
		return fmt.Errorf("VERID_AUDIT_BUFFER_SIZE must be positive")
	}
	return nil
}
