// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"slices"

	"github.com/dacolabs/zodgen/internal/jschema"
	"github.com/dacolabs/zodgen/internal/session"
	"github.com/dacolabs/zodgen/internal/translate"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

type inspectOptions struct {
	names      []string
	translator string
}

func newInspectCmd(translators translate.Register) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [paths...]",
		Short: "Show how each definition is classified",
		Long: `Load and merge schema files, then print every definition as a tree of
classified shapes. Definitions the translator cannot express are marked.`,
		Example: `  # Inspect all definitions
  zodgen inspect schemas/

  # Inspect selected definitions
  zodgen inspect schemas/ --name User,Address`,
		PreRunE: session.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.names, "name", "n", nil, "Definition name(s), comma-separated")
	cmd.Flags().StringVarP(&opts.translator, "translator", "t", "zod", "Translator used to mark omitted definitions")

	return cmd
}

func runInspect(cmd *cobra.Command, translators translate.Register, opts *inspectOptions, args []string) error {
	translator, err := translators.Get(opts.translator)
	if err != nil {
		return err
	}

	docs, files, err := loadDocuments(cmd.Context(), inputArgs(cmd, args))
	if err != nil {
		return err
	}
	merged := mergeDocuments(docs, files)

	for _, name := range opts.names {
		if _, ok := merged.Definitions.Get(name); !ok {
			return fmt.Errorf("definition %q not found", name)
		}
	}

	omitted := translate.Omitted(merged, translator.Translate(merged))

	tree := treeprint.NewWithRoot(fmt.Sprintf("%d definitions", merged.Definitions.Len()))
	for name, def := range merged.Definitions.All() {
		if len(opts.names) > 0 && !slices.Contains(opts.names, name) {
			continue
		}
		label := name + ": " + describe(def)
		if slices.Contains(omitted, name) {
			label += " (omitted)"
		}
		addShape(tree.AddBranch(label), def)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.String())
	return err
}

func describe(n *jschema.Node) string {
	s := translate.Classify(n)
	if s == nil {
		return "unrecognized"
	}
	return s.String()
}

// addShape adds the children of n under branch.
func addShape(branch treeprint.Tree, n *jschema.Node) {
	switch s := translate.Classify(n).(type) {
	case translate.UnionShape:
		for i, b := range s.Branches {
			addChild(branch, fmt.Sprintf("[%d]", i), b)
		}
	case translate.TypedShape, translate.MultiTypedShape:
		if n.Const != nil {
			return
		}
		if obj := n.Object; obj != nil {
			for _, p := range obj.Properties {
				addChild(branch, p.Name, p.Schema)
			}
			if obj.AdditionalProperties != nil {
				addChild(branch, "*", obj.AdditionalProperties)
			}
		}
		if arr := n.Array; arr != nil {
			if arr.Items != nil {
				addChild(branch, "items", arr.Items)
			}
			for i, item := range arr.ItemsArray {
				addChild(branch, fmt.Sprintf("items[%d]", i), item)
			}
			if length, ok := arr.FixedLength(); ok {
				branch.AddNode(fmt.Sprintf("length %d", length))
			}
		}
	}
}

func addChild(branch treeprint.Tree, label string, n *jschema.Node) {
	child := branch.AddBranch(label + ": " + describe(n))
	addShape(child, n)
}
