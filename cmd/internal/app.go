// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dacolabs/zodgen/internal/commands"
	"github.com/dacolabs/zodgen/internal/translate"
	"github.com/dacolabs/zodgen/internal/translate/zod"
)

// LogLevelEnv names the environment variable holding the initial log level.
const LogLevelEnv = "ZODGEN_LOG_LEVEL"

// RegisterTranslators returns the translators the CLI offers.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&zod.Translator{})
	return translators
}

// LogLevel reads the initial log level from the environment. It defaults to warn.
func LogLevel(getenv func(string) string) (*slog.LevelVar, error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if v := getenv(LogLevelEnv); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", LogLevelEnv, err)
		}
	}
	return level, nil
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	level, err := LogLevel(getenv)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	rootCmd := commands.NewRootCmd(RegisterTranslators(), level)
	return rootCmd.ExecuteContext(ctx)
}
