// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/zodgen/internal/session"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type mergeOptions struct {
	output string
}

func newMergeCmd() *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge [paths...]",
		Short: "Print the merged schema document",
		Long: `Load and merge schema files into one document whose definitions are the
union of every file's definitions plus each file's titled root. The result is
printed as JSON Schema with keys in declaration order.`,
		Example: `  # Merge the inputs listed in zodgen.yaml
  zodgen merge

  # Merge two files into one
  zodgen merge user.json order.yaml -o merged.json`,
		PreRunE: session.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runMerge(cmd *cobra.Command, opts *mergeOptions, args []string) error {
	docs, files, err := loadDocuments(cmd.Context(), inputArgs(cmd, args))
	if err != nil {
		return err
	}
	merged := mergeDocuments(docs, files)

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode merged document: %w", err)
	}
	return writeOutput(cmd, opts.output, append(data, '\n'))
}
