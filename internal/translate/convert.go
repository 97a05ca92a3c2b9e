// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"sort"
	"strings"

	"github.com/dacolabs/zodgen/internal/jschema"
	"github.com/goccy/go-json"
)

// Result maps definition names to their generated text blocks.
type Result map[string]string

// Convert renders every definition of doc. The root of doc is ignored, and a
// definition that cannot be rendered is silently left out.
func Convert(doc *jschema.Document, resolver ExprResolver) Result {
	result := make(Result)
	if doc == nil {
		return result
	}
	for name, def := range doc.Definitions.All() {
		expr, ok := Emit(def, resolver)
		if !ok {
			continue
		}
		result[name] = resolver.Declare(name, expr)
	}
	return result
}

// Omitted returns the definitions of doc missing from result, in definition order.
func Omitted(doc *jschema.Document, result Result) []string {
	var names []string
	for name := range doc.Definitions.All() {
		if _, ok := result[name]; !ok {
			names = append(names, name)
		}
	}
	return names
}

// Names returns the definition names in sorted order.
func (r Result) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text concatenates the blocks in name order, separated by sep.
func (r Result) Text(sep string) string {
	names := r.Names()
	blocks := make([]string, len(names))
	for i, name := range names {
		blocks[i] = r[name]
	}
	return strings.Join(blocks, sep)
}

// JSON renders the mapping as an indented JSON object.
func (r Result) JSON() ([]byte, error) {
	return json.MarshalIndentWithOption(map[string]string(r), "", "  ", json.DisableHTMLEscape())
}
