// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"slices"

	"github.com/dacolabs/zodgen/internal/jschema"
)

// preferredDiscriminators are tried in order before any other shared field.
var preferredDiscriminators = []string{"type", "kind"}

// InferDiscriminator returns the field that tags every branch of a union.
//
// Candidates are the property names of the first branch that every other
// branch also declares; branches that are not objects declare nothing. "type"
// wins over "kind", which wins over the remaining candidates in the first
// branch's declaration order.
func InferDiscriminator(branches []*jschema.Node) (string, bool) {
	if len(branches) == 0 {
		return "", false
	}

	var candidates []string
	for _, name := range objectFields(branches[0]) {
		shared := true
		for _, b := range branches[1:] {
			if !slices.Contains(objectFields(b), name) {
				shared = false
				break
			}
		}
		if shared {
			candidates = append(candidates, name)
		}
	}

	for _, name := range preferredDiscriminators {
		if slices.Contains(candidates, name) {
			return name, true
		}
	}
	if len(candidates) > 0 {
		return candidates[0], true
	}
	return "", false
}

// objectFields returns the declared property names of an object-typed node.
func objectFields(n *jschema.Node) []string {
	s, ok := Classify(n).(TypedShape)
	if !ok || s.Type != jschema.Object || n.Object == nil {
		return nil
	}
	return n.Object.Properties.Names()
}
