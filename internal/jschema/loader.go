// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedFormat indicates a schema file with an unknown extension.
var ErrUnsupportedFormat = errors.New("format not supported")

// IsSchemaFile reports whether the file extension is one the loader can read.
func IsSchemaFile(filePath string) bool {
	return strings.HasSuffix(filePath, ".json") ||
		strings.HasSuffix(filePath, ".yaml") ||
		strings.HasSuffix(filePath, ".yml")
}

func loadSource(data []byte, filePath string) (*jsonschema.Schema, *source, KeyOrder, error) {
	var (
		src      *source
		keyOrder KeyOrder
		err      error
	)
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		if src, err = normalizeYAML(data); err != nil {
			return nil, nil, nil, err
		}
		keyOrder, err = ExtractKeyOrderFromYAML(data)
	case strings.HasSuffix(filePath, ".json"):
		if src, err = normalizeJSON(data); err != nil {
			return nil, nil, nil, err
		}
		keyOrder, err = ExtractKeyOrderFromJSON(data)
	default:
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	// jsonschema.Schema only knows its JSON form, so both formats are
	// decoded from the normalised JSON.
	var schema jsonschema.Schema
	if err := json.Unmarshal(src.data, &schema); err != nil {
		return nil, nil, nil, err
	}
	return &schema, src, keyOrder, nil
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	schema, src, keyOrder, err := loadSource(data, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	d := decoder{order: keyOrder, literals: src.literals, positional: src.positional}
	return d.document(schema), nil
}

// LoadFiles loads several schema files concurrently.
// Documents are returned in the order of paths.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]*Document, error) {
	docs := make([]*Document, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for i, p := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := l.LoadFile(p)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
