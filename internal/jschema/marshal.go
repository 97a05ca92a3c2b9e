// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"

	"github.com/goccy/go-json"
)

// member is one key of a JSON object written in a fixed order.
type member struct {
	key   string
	value any
}

// object is a JSON object that keeps its members in order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the document with its definitions under "definitions",
// which is where DefName resolves "#/definitions/" references.
func (d *Document) MarshalJSON() ([]byte, error) {
	o := object{}
	if d.Root != nil {
		o = d.Root.members()
	}
	if d.Definitions.Len() > 0 {
		defs := make(object, 0, d.Definitions.Len())
		for name, def := range d.Definitions.All() {
			defs = append(defs, member{name, def})
		}
		o = append(o, member{"definitions", defs})
	}
	return json.Marshal(o)
}

// MarshalJSON encodes the node as JSON Schema with keys in a stable order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.members())
}

func (n *Node) members() object {
	o := object{}
	add := func(key string, value any) {
		o = append(o, member{key, value})
	}

	if n.Ref != "" {
		add("$ref", n.Ref)
	}
	if n.Title != "" {
		add("title", n.Title)
	}
	switch {
	case len(n.Types) > 0:
		add("type", n.Types)
	case n.Type != "":
		add("type", n.Type)
	}
	if n.Format != "" {
		add("format", n.Format)
	}
	if n.Const != nil {
		add("const", *n.Const)
	}
	if n.Enum != nil {
		add("enum", n.Enum)
	}
	if len(n.OneOf) > 0 {
		add("oneOf", n.OneOf)
	}

	if obj := n.Object; obj != nil {
		if len(obj.Properties) > 0 {
			props := make(object, 0, len(obj.Properties))
			for _, p := range obj.Properties {
				props = append(props, member{p.Name, p.Schema})
			}
			add("properties", props)
		}
		if obj.AdditionalProperties != nil {
			add("additionalProperties", obj.AdditionalProperties)
		}
	}

	if arr := n.Array; arr != nil {
		switch {
		case len(arr.ItemsArray) > 0:
			add("items", arr.ItemsArray)
		case arr.Items != nil:
			add("items", arr.Items)
		}
		if arr.MinItems != nil {
			add("minItems", *arr.MinItems)
		}
		if arr.MaxItems != nil {
			add("maxItems", *arr.MaxItems)
		}
	}

	return o
}
