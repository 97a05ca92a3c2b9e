// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"sort"
	"strings"
)

var refPrefixes = []string{
	"#/definitions/",
	"#/$defs/",
	"#/components/schemas/",
}

// DefName extracts the definition name from a $ref string.
// Supports definitions, $defs, and components/schemas (OpenAPI) pointers;
// any other ref is returned unchanged.
func DefName(ref string) string {
	for _, prefix := range refPrefixes {
		if name, ok := strings.CutPrefix(ref, prefix); ok {
			return name
		}
	}
	return ref
}

// UnresolvedRefs returns the sorted, de-duplicated definition names that are
// referenced somewhere in doc but missing from its definition table.
func UnresolvedRefs(doc *Document) []string {
	missing := make(map[string]struct{})
	check := func(root *Node) {
		for n := range Traverse(root) {
			if n.Ref == "" {
				continue
			}
			name := DefName(n.Ref)
			if _, ok := doc.Definitions.Get(name); !ok {
				missing[name] = struct{}{}
			}
		}
	}

	check(doc.Root)
	for _, def := range doc.Definitions.All() {
		check(def)
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
