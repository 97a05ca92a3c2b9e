// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"iter"
	"reflect"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
)

// FromSchema converts a parsed JSON Schema into a Document. order supplies the
// source key order used for properties and definitions; it may be nil, in which
// case keys are sorted.
func FromSchema(s *jsonschema.Schema, order KeyOrder) *Document {
	return decoder{order: order}.document(s)
}

// decoder carries the source details a jsonschema.Schema does not keep.
type decoder struct {
	order      KeyOrder
	literals   map[string]literal
	positional map[string]bool
}

func (d decoder) document(s *jsonschema.Schema) *Document {
	doc := &Document{Root: d.node(s, "")}
	for name, def := range orderedDefs(s.Definitions, d.order, pointerJoin("", "definitions")) {
		doc.Definitions.Set(name, d.node(def, pointerJoin("", "definitions", name)))
	}
	for name, def := range orderedDefs(s.Defs, d.order, pointerJoin("", "$defs")) {
		doc.Definitions.Set(name, d.node(def, pointerJoin("", "$defs", name)))
	}
	return doc
}

func orderedDefs(defs map[string]*jsonschema.Schema, order KeyOrder, pointer string) iter.Seq2[string, *jsonschema.Schema] {
	return func(yield func(string, *jsonschema.Schema) bool) {
		for _, name := range Ordered(order, pointer, defs) {
			if !yield(name, defs[name]) {
				return
			}
		}
	}
}

func (d decoder) node(s *jsonschema.Schema, pointer string) *Node {
	if s == nil {
		return nil
	}

	n := &Node{
		Ref:    s.Ref,
		Title:  s.Title,
		Const:  s.Const,
		Enum:   s.Enum,
		Type:   InstanceType(s.Type),
		Format: s.Format,
	}
	if lit, ok := d.literals[pointer]; ok {
		if lit.Const != nil {
			n.Const = lit.Const
		}
		if lit.Enum != nil {
			n.Enum = lit.Enum
		}
	}
	for _, t := range s.Types {
		n.Types = append(n.Types, InstanceType(t))
	}
	for i, branch := range s.OneOf {
		n.OneOf = append(n.OneOf, d.node(branch, pointerJoin(pointer, "oneOf", strconv.Itoa(i))))
	}

	if n.HasType(Object) {
		n.Object = &ObjectShape{}
		for _, name := range Ordered(d.order, pointerJoin(pointer, "properties"), s.Properties) {
			n.Object.Properties = append(n.Object.Properties, Property{
				Name:   name,
				Schema: d.node(s.Properties[name], pointerJoin(pointer, "properties", name)),
			})
		}
		// additionalProperties: false closes the object; it does not describe a map.
		if !isFalseSchema(s.AdditionalProperties) {
			n.Object.AdditionalProperties = d.node(s.AdditionalProperties, pointerJoin(pointer, "additionalProperties"))
		}
	}

	if n.HasType(Array) {
		n.Array = &ArrayShape{
			MinItems: s.MinItems,
			MaxItems: s.MaxItems,
		}
		switch {
		case len(s.PrefixItems) > 0:
			keyword := "prefixItems"
			if d.positional[pointer] {
				keyword = "items"
			}
			for i, item := range s.PrefixItems {
				n.Array.ItemsArray = append(n.Array.ItemsArray, d.node(item, pointerJoin(pointer, keyword, strconv.Itoa(i))))
			}
		case s.Items != nil && !isFalseSchema(s.Items):
			n.Array.Items = d.node(s.Items, pointerJoin(pointer, "items"))
		}
	}

	return n
}

// isFalseSchema reports whether s is the boolean schema false, which the
// jsonschema package decodes as {"not": {}}.
func isFalseSchema(s *jsonschema.Schema) bool {
	if s == nil || s.Not == nil {
		return false
	}
	rest := *s
	rest.Not = nil
	return reflect.ValueOf(rest).IsZero() && reflect.ValueOf(*s.Not).IsZero()
}
