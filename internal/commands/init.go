// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/zodgen/internal/config"
	"github.com/dacolabs/zodgen/internal/prompts"
	"github.com/dacolabs/zodgen/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	inputs         []string
	output         string
	format         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new zodgen project",
		Long: `Initialize a new zodgen project with a zodgen.yaml configuration file
listing the schema inputs and where generated code is written.`,
		Example: `  # Interactive mode
  zodgen init

  # Non-interactive
  zodgen init --input schemas --output src/schemas.ts --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.inputs, "input", "i", nil, "Schema files, directories or glob patterns")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Output format (text or json)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("zodgen.yaml already exists; project already initialized")
	}

	if opts.nonInteractive || !interactive() {
		if len(opts.inputs) == 0 {
			return errors.New("non-interactive mode requires --input")
		}
	} else {
		answer := strings.Join(opts.inputs, ", ")
		if err := prompts.RunInitForm(&answer, &opts.output, &opts.format); err != nil {
			return err
		}
		opts.inputs = prompts.SplitList(answer)
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Inputs:  opts.inputs,
		Output:  opts.output,
		Format:  opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Inputs", Value: strings.Join(cfg.Inputs, ", ")},
		{Label: "Output", Value: output},
		{Label: "Format", Value: cfg.Format},
	}, "Initialization completed")
	return nil
}
