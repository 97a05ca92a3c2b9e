// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// FormatSelect returns a select field for choosing the output format.
func FormatSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Output format").
		Options(
			huh.NewOption("Code (one declaration block per definition)", "text"),
			huh.NewOption("JSON (definition name to code block)", "json"),
		).
		Value(value)
}

// TranslatorSelect returns a select field for choosing among registered translators.
func TranslatorSelect(value *string, names []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(names))
	for i, n := range names {
		options[i] = huh.NewOption(n, n)
	}
	return huh.NewSelect[string]().
		Title("Translator").
		Options(options...).
		Value(value)
}

// RunConvertForm asks for the inputs of a conversion when none were given.
// The translator is only asked for when more than one is registered.
func RunConvertForm(inputs, translator *string, translators []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema inputs").
				Description("Files, directories or glob patterns, comma-separated").
				Validate(requiredValidator("at least one input")).
				Value(inputs),
		),
		huh.NewGroup(
			TranslatorSelect(translator, translators),
		).WithHideFunc(func() bool { return len(translators) < 2 }),
	).WithTheme(Theme()).Run()
}
