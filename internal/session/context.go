// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/zodgen/internal/config"
)

var (
	// ErrNotInitialized indicates no zodgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a zodgen project (zodgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the zodgen configuration file.
const ConfigFileName = "zodgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the directory it was loaded from.
type Context struct {
	// Config has defaults applied.
	Config *config.Config

	// Dir is the directory containing zodgen.yaml.
	Dir string
}

// Inputs returns the configured inputs resolved against Dir.
func (c *Context) Inputs() []string {
	inputs := make([]string, len(c.Config.Inputs))
	for i, in := range c.Config.Inputs {
		inputs[i] = c.Resolve(in)
	}
	return inputs
}

// Resolve makes a relative path relative to Dir.
func (c *Context) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the zodgen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadDir(ctx, cwd)
}

// LoadDir is Load for an explicit project directory.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	resolved := cfg.WithDefaults()
	return context.WithValue(ctx, contextKey{}, &Context{Config: &resolved, Dir: dir}), nil
}

// From extracts the zodgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if zctx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return zctx
	}
	return nil
}
