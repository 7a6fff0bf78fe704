// Package config holds the toolkit configuration: how side-channel
// diagnostics are logged and which record keys count as metadata
// slots when normalizing raw maps.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatNone    = "none"
)

// Default metadata slot keys for map-shaped records.
const (
	DefaultPrimarySlot   = "__metadata__"
	DefaultSecondarySlot = "__meta__"
)

// Config is the root configuration.
type Config struct {
	// Logging configures the diagnostic logger.
	Logging Logging `yaml:"logging" json:"logging"`

	// Metadata configures metadata stripping.
	Metadata Metadata `yaml:"metadata" json:"metadata"`
}

// Logging configures where warnings such as deprecation notices go.
type Logging struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" json:"level"`

	// Format is console, json or none.
	Format string `yaml:"format" json:"format"`

	// OutputPath is the file for json output. Empty means stdout
	// for json and stderr for console.
	OutputPath string `yaml:"output_path" json:"output_path"`

	// Color enables ANSI colors on console output.
	Color bool `yaml:"color" json:"color"`
}

// Metadata names the transient slots cleared on map-shaped records.
type Metadata struct {
	PrimarySlot   string `yaml:"primary_slot" json:"primary_slot"`
	SecondarySlot string `yaml:"secondary_slot" json:"secondary_slot"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Level:  "warn",
			Format: FormatConsole,
			Color:  true,
		},
		Metadata: Metadata{
			PrimarySlot:   DefaultPrimarySlot,
			SecondarySlot: DefaultSecondarySlot,
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the
// result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.level: unknown level %q", c.Logging.Level,
		))
	}

	switch c.Logging.Format {
	case FormatConsole, FormatJSON, FormatNone:
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format: unknown format %q", c.Logging.Format,
		))
	}

	if c.Metadata.PrimarySlot == "" {
		errs = append(errs, errors.New(
			"metadata.primary_slot: must not be empty",
		))
	}
	if c.Metadata.SecondarySlot == "" {
		errs = append(errs, errors.New(
			"metadata.secondary_slot: must not be empty",
		))
	}
	if c.Metadata.PrimarySlot != "" &&
		c.Metadata.PrimarySlot == c.Metadata.SecondarySlot {
		errs = append(errs, fmt.Errorf(
			"metadata: primary and secondary slot are both %q",
			c.Metadata.PrimarySlot,
		))
	}

	return errors.Join(errs...)
}
