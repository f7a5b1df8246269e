// SPDX-License-Identifier: MIT

// Package config loads the sqmatrix CLI settings from the environment.
// Command-line flags override these values in cmd/sqmatrix.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when a parsed value is outside its legal range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the ambient settings of the demo CLI.
type Config struct {
	// FieldWidth is the minimum cell width used when printing matrices.
	FieldWidth int `env:"SQMATRIX_FIELD_WIDTH" envDefault:"8"`
	// Precision is the significant-digit count for floating matrices.
	Precision int `env:"SQMATRIX_PRECISION" envDefault:"6"`
	// Verbose enables debug-level logging.
	Verbose bool `env:"SQMATRIX_VERBOSE" envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
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

// Validate checks ranges that the matrix render options would otherwise panic on.
func (c Config) Validate() error {
	if c.FieldWidth < 1 {
		return fmt.Errorf("field width %d: %w", c.FieldWidth, ErrInvalidConfig)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision %d: %w", c.Precision, ErrInvalidConfig)
	}

	return nil
}
