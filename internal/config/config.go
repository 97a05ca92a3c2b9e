// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles zodgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults applied by WithDefaults.
const (
	DefaultFormat     = FormatText
	DefaultSeparator  = "\n"
	DefaultTranslator = "zod"
)

// Config represents the zodgen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Inputs are schema files, directories or glob patterns, relative to the config file.
	Inputs []string `yaml:"inputs"`
	// Output is the file the generated code is written to; empty means stdout.
	Output     string `yaml:"output,omitempty"`
	Format     string `yaml:"format,omitempty"`
	Separator  string `yaml:"separator,omitempty"`
	Translator string `yaml:"translator,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// WithDefaults returns a copy of c with empty optional fields filled in.
func (c Config) WithDefaults() Config {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Translator == "" {
		c.Translator = DefaultTranslator
	}
	return c
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if len(c.Inputs) == 0 {
		return errors.New("at least one input is required")
	}
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// ValidateFormat accepts the known output formats and the empty string.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatText, FormatJSON)
}
