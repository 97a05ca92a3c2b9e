// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/zodgen/internal/prompts"
	"github.com/dacolabs/zodgen/internal/version"
	"github.com/spf13/cobra"
)

type versionOptions struct {
	short bool
}

func newVersionCmd() *cobra.Command {
	opts := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Example: `  # Show version, commit and build date
  zodgen version

  # Show only the version
  zodgen version --short`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.short, "short", false, "Print only the version")

	return cmd
}

func runVersion(cmd *cobra.Command, opts *versionOptions) error {
	b := version.Current()
	if opts.short {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), b.Version)
		return err
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Version", Value: b.Version},
		{Label: "Commit", Value: b.Commit},
		{Label: "Built", Value: b.Date},
		{Label: "Go", Value: b.Go},
	}, "")
	return nil
}
