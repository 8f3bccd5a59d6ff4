// Package config loads CLI defaults from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidWorkers indicates a negative worker count.
var ErrInvalidWorkers = errors.New("config: workers must be >= 0")

// Config holds CLI configuration. Flags override these values.
type Config struct {
	// Seed is the base RNG seed; 0 seeds from the clock.
	Seed int64 `env:"PERCOLATION_SEED" envDefault:"0"`
	// Workers caps concurrent trials; 0 uses GOMAXPROCS.
	Workers int `env:"PERCOLATION_WORKERS" envDefault:"0"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"PERCOLATION_LOG_LEVEL" envDefault:"warn"`
	// LogFormat is text or json.
	LogFormat string `env:"PERCOLATION_LOG_FORMAT" envDefault:"text"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env tags cannot express.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidWorkers)
	}
	return nil
}
