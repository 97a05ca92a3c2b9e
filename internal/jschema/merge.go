// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

// Merge combines independently produced documents into one document whose
// definition table holds every named type.
//
// A document whose root carries no title is skipped entirely. For every other
// document its definitions are copied (later documents overwrite earlier ones
// with the same name) and its root is added as a definition under its title.
// The merged document has no root of its own.
func Merge(docs ...*Document) *Document {
	merged := &Document{}
	for _, doc := range docs {
		title := doc.Title()
		if title == "" {
			continue
		}

		for name, def := range doc.Definitions.All() {
			merged.Definitions.Set(name, def)
		}

		merged.Definitions.Set(title, doc.Root)
	}
	return merged
}
