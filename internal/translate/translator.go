// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns schema documents into validator-construction source text.
package translate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dacolabs/zodgen/internal/jschema"
)

// ErrUnknownTranslator is returned by Register.Get for an unregistered name.
var ErrUnknownTranslator = errors.New("unknown translator")

// Translator defines the interface all target dialects must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "zod")
	Name() string

	// Translate converts every definition of doc; definitions that cannot be
	// expressed are left out of the result.
	Translate(doc *jschema.Document) Result

	// Preamble returns text that must precede the concatenated output (imports).
	Preamble() string

	// FileExtension returns the appropriate file extension (e.g., ".ts")
	FileExtension() string
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTranslator, name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
