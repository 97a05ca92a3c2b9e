// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// inputs is a comma-separated list of schema files, directories or globs.
func RunInitForm(inputs, output, format *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema inputs").
				Description("Files, directories or glob patterns, comma-separated").
				Placeholder("schemas").
				Validate(requiredValidator("at least one input")).
				Value(inputs),
			huh.NewInput().
				Title("Output file").
				Description("Leave empty to print to stdout").
				Placeholder("src/schemas.ts").
				Value(output),
		),
		huh.NewGroup(
			FormatSelect(format),
		),
	).WithTheme(Theme()).Run()
}
