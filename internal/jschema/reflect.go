// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"math"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"
)

// Reflect builds a Document from the Go type of v. The root is expanded inline
// and titled with the type name so the document can be merged directly; nested
// named types become definitions referenced through "#/$defs/".
func Reflect(v any) *Document {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	doc := FromReflected(r.Reflect(v))
	if doc.Root != nil && doc.Root.Title == "" {
		t := reflect.TypeOf(v)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t != nil {
			doc.Root.Title = t.Name()
		}
	}
	return doc
}

// FromReflected converts a schema produced by a jsonschema.Reflector into a Document.
// Definition names are sorted since the reflector keeps them in a plain map.
func FromReflected(s *jsonschema.Schema) *Document {
	doc := &Document{Root: fromReflected(s)}

	names := make([]string, 0, len(s.Definitions))
	for name := range s.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Definitions.Set(name, fromReflected(s.Definitions[name]))
	}
	return doc
}

func fromReflected(s *jsonschema.Schema) *Node {
	if s == nil {
		return nil
	}

	n := &Node{
		Ref:    s.Ref,
		Title:  s.Title,
		Enum:   s.Enum,
		Type:   InstanceType(s.Type),
		Format: s.Format,
	}
	if s.Const != nil {
		c := s.Const
		n.Const = &c
	}
	for _, branch := range s.OneOf {
		n.OneOf = append(n.OneOf, fromReflected(branch))
	}

	if n.Type == Object {
		n.Object = &ObjectShape{}
		if s.Properties != nil {
			for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
				n.Object.Properties = append(n.Object.Properties, Property{
					Name:   pair.Key,
					Schema: fromReflected(pair.Value),
				})
			}
		}
		if s.AdditionalProperties != jsonschema.FalseSchema {
			n.Object.AdditionalProperties = fromReflected(s.AdditionalProperties)
		}
	}

	if n.Type == Array {
		n.Array = &ArrayShape{
			MinItems: uintPtr(s.MinItems),
			MaxItems: uintPtr(s.MaxItems),
		}
		if len(s.PrefixItems) > 0 {
			for _, item := range s.PrefixItems {
				n.Array.ItemsArray = append(n.Array.ItemsArray, fromReflected(item))
			}
		} else if s.Items != jsonschema.FalseSchema {
			n.Array.Items = fromReflected(s.Items)
		}
	}

	return n
}

// uintPtr converts an item count, saturating at math.MaxInt.
func uintPtr(v *uint64) *int {
	if v == nil {
		return nil
	}
	i := math.MaxInt
	if *v < math.MaxInt {
		i = int(*v)
	}
	return &i
}
