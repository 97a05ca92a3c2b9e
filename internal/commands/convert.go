// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dacolabs/zodgen/internal/config"
	"github.com/dacolabs/zodgen/internal/prompts"
	"github.com/dacolabs/zodgen/internal/session"
	"github.com/dacolabs/zodgen/internal/translate"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	output     string
	format     string
	separator  string
	translator string
}

func newConvertCmd(translators translate.Register) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Generate validators from schema files",
		Long: fmt.Sprintf(`Load and merge schema files, then generate one validator declaration per definition.

Paths may be files, directories or glob patterns. Without paths the inputs of
zodgen.yaml are used. Each file must have a root title; its root becomes a
definition under that name.

Available translators: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Convert the inputs listed in zodgen.yaml
  zodgen convert

  # Convert a directory to a file
  zodgen convert schemas/ --output src/schemas.ts

  # Print the name to code mapping as JSON
  zodgen convert user.json order.yaml --format json`,
		PreRunE: session.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (text or json)")
	cmd.Flags().StringVar(&opts.separator, "separator", "", `Text placed between declarations (default "\n")`)
	cmd.Flags().StringVarP(&opts.translator, "translator", "t", "", fmt.Sprintf("Target dialect (%s)", strings.Join(translators.Available(), ", ")))

	return cmd
}

// convertSettings applies changed flags over the project configuration, or
// over the defaults outside a project. An explicit empty separator is kept.
func convertSettings(cmd *cobra.Command, opts *convertOptions) config.Config {
	cfg := config.Config{}.WithDefaults()
	if zctx := session.FromCommand(cmd); zctx != nil {
		cfg = *zctx.Config
		cfg.Output = zctx.Resolve(cfg.Output)
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("separator") {
		cfg.Separator = opts.separator
	}
	if flags.Changed("translator") {
		cfg.Translator = opts.translator
	}
	return cfg
}

func runConvert(cmd *cobra.Command, translators translate.Register, opts *convertOptions, args []string) error {
	cfg := convertSettings(cmd, opts)
	if err := config.ValidateFormat(cfg.Format); err != nil {
		return err
	}

	inputs := inputArgs(cmd, args)
	if len(inputs) == 0 && interactive() {
		var answer string
		if err := prompts.RunConvertForm(&answer, &cfg.Translator, translators.Available()); err != nil {
			return err
		}
		inputs = prompts.SplitList(answer)
	}

	translator, err := translators.Get(cfg.Translator)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(translators.Available(), ", "))
	}

	cfg.Output = outputPath(cfg.Output, cfg.Format, translator)

	docs, files, err := loadDocuments(cmd.Context(), inputs)
	if err != nil {
		return err
	}
	merged := mergeDocuments(docs, files)

	result := translator.Translate(merged)
	omitted := translate.Omitted(merged, result)
	for _, name := range omitted {
		slog.Warn("definition has no representation and was omitted", "name", name)
	}

	var data []byte
	switch cfg.Format {
	case config.FormatJSON:
		data, err = result.JSON()
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		data = append(data, '\n')
	default:
		data = []byte(translator.Preamble() + cfg.Separator + result.Text(cfg.Separator))
	}

	if err := writeOutput(cmd, cfg.Output, data); err != nil {
		return err
	}

	if cfg.Output != "" {
		out := cmd.OutOrStdout()
		prompts.PrintResult(out, []prompts.ResultField{
			{Label: "Files", Value: strconv.Itoa(len(files))},
			{Label: "Definitions", Value: strconv.Itoa(len(result))},
			{Label: "Output", Value: cfg.Output},
		}, "Conversion completed")
		prompts.PrintWarnings(out, "Omitted definitions:", omitted)
	}
	return nil
}

// outputPath adds the extension matching the format to a path that has none.
func outputPath(path, format string, translator translate.Translator) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	if format == config.FormatJSON {
		return path + ".json"
	}
	return path + translator.FileExtension()
}
