// Package config reads the CLI settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrInvalidFormat is returned when the output format is neither json nor yaml.
	ErrInvalidFormat = errors.New("invalid output format: must be json or yaml")

	// ErrEmptyDatabasePath is returned when the archive path is blank.
	ErrEmptyDatabasePath = errors.New("database path must not be empty")
)

type Config struct {
	DatabasePath string `env:"SIMILAR_DB_PATH" envDefault:"data/data.db"`
	OutputFormat string `env:"SIMILAR_OUTPUT_FORMAT" envDefault:"json"`
	Debug        bool   `env:"SIMILAR_DEBUG" envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return ErrEmptyDatabasePath
	}
	switch c.OutputFormat {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.OutputFormat)
	}
}
