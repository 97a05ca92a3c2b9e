// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"

	"github.com/dacolabs/zodgen/internal/translate"
	"github.com/dacolabs/zodgen/internal/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

// NewRootCmd creates and returns the root command for the CLI.
// When level is not nil, --verbose lowers it to debug.
func NewRootCmd(translators translate.Register, level *slog.LevelVar) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "zodgen",
		Short: "Generate Zod validators from JSON Schema",
		Long: `zodgen turns the definitions of JSON Schema documents into Zod
validator declarations with matching TypeScript types.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	registerInitCmd(rootCmd)
	registerConvertCmd(rootCmd, translators)
	registerMergeCmd(rootCmd)
	registerInspectCmd(rootCmd, translators)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerConvertCmd(parent *cobra.Command, translators translate.Register) {
	parent.AddCommand(newConvertCmd(translators))
}

func registerMergeCmd(parent *cobra.Command) {
	parent.AddCommand(newMergeCmd())
}

func registerInspectCmd(parent *cobra.Command, translators translate.Register) {
	parent.AddCommand(newInspectCmd(translators))
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
