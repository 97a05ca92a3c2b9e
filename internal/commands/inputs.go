// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/zodgen/internal/jschema"
	"github.com/dacolabs/zodgen/internal/session"
	"github.com/spf13/cobra"
)

var errNoInputs = errors.New("no schema inputs: pass files or directories, or run zodgen init")

// inputArgs returns args when given, otherwise the inputs of the loaded project.
func inputArgs(cmd *cobra.Command, args []string) []string {
	if len(args) > 0 {
		return args
	}
	if zctx := session.FromCommand(cmd); zctx != nil {
		return zctx.Inputs()
	}
	return nil
}

// expandInputs turns files, directories and glob patterns into a list of
// schema files. Directories are walked recursively in lexical order and only
// contribute files the loader can read; a file named directly is kept as is.
func expandInputs(inputs []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(files []string) {
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}

	for _, in := range inputs {
		if !hasGlobMeta(in) {
			files, err := expandPath(in)
			if err != nil {
				return nil, err
			}
			add(files)
			continue
		}

		matches, err := filepath.Glob(in)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", in, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matches no files", in)
		}
		for _, m := range matches {
			files, err := expandPath(m)
			if err != nil {
				return nil, err
			}
			add(files)
		}
	}

	if len(out) == 0 {
		return nil, errNoInputs
	}
	return out, nil
}

func expandPath(p string) ([]string, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{p}, nil
	}

	var files []string
	err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && jschema.IsSchemaFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[")
}

// loadDocuments expands inputs and loads every schema file found.
func loadDocuments(ctx context.Context, inputs []string) ([]*jschema.Document, []string, error) {
	if len(inputs) == 0 {
		return nil, nil, errNoInputs
	}
	files, err := expandInputs(inputs)
	if err != nil {
		return nil, nil, err
	}

	rel := make([]string, len(files))
	for i, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, nil, err
		}
		rel[i] = strings.TrimPrefix(filepath.ToSlash(abs), "/")
	}

	slog.Debug("loading schema files", "count", len(files))
	docs, err := jschema.NewLoader(os.DirFS("/")).LoadFiles(ctx, rel)
	if err != nil {
		return nil, nil, err
	}
	return docs, files, nil
}

// mergeDocuments merges docs and logs what the merge drops or cannot resolve.
func mergeDocuments(docs []*jschema.Document, files []string) *jschema.Document {
	for i, doc := range docs {
		if doc.Title() == "" {
			slog.Warn("skipping schema without a root title", "file", files[i])
			continue
		}
		slog.Debug("loaded schema", "file", files[i], "title", doc.Title(), "definitions", doc.Definitions.Len())
	}

	merged := jschema.Merge(docs...)
	for _, name := range jschema.UnresolvedRefs(merged) {
		slog.Warn("reference to undefined definition", "name", name)
	}
	return merged
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
