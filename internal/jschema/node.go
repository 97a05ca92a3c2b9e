// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides the schema document model and its JSON Schema
// loading, reflection, merging, and traversal utilities.
package jschema

import "iter"

// InstanceType is a JSON Schema primitive category.
type InstanceType string

// Primitive categories understood by the converter.
const (
	Null    InstanceType = "null"
	Boolean InstanceType = "boolean"
	Object  InstanceType = "object"
	Array   InstanceType = "array"
	Number  InstanceType = "number"
	Integer InstanceType = "integer"
	String  InstanceType = "string"
)

// DateTimeFormat is the string format that marks a timestamp.
const DateTimeFormat = "date-time"

// Document is a schema document: one root node plus a table of named definitions.
// A merged document may have a nil Root.
type Document struct {
	Root        *Node
	Definitions Definitions
}

// Title returns the root title, or "" when the root is missing or untitled.
func (d *Document) Title() string {
	if d == nil || d.Root == nil {
		return ""
	}
	return d.Root.Title
}

// Node describes one type. Nodes are built once by a decoder and then only read.
type Node struct {
	Ref    string
	Title  string
	Const  *any
	Enum   []any
	OneOf  []*Node
	Type   InstanceType   // single category
	Types  []InstanceType // category sequence (implicit union)
	Format string

	// Object is set whenever the node's type includes "object".
	Object *ObjectShape
	// Array is set whenever the node's type includes "array".
	Array *ArrayShape
}

// HasType reports whether t is the node's single category or one of its categories.
func (n *Node) HasType(t InstanceType) bool {
	if n.Type == t {
		return true
	}
	for _, nt := range n.Types {
		if nt == t {
			return true
		}
	}
	return false
}

// ObjectShape holds the object validation keywords of a node.
type ObjectShape struct {
	Properties           Properties
	AdditionalProperties *Node
}

// Property is a named child of an object node.
type Property struct {
	Name   string
	Schema *Node
}

// Properties is an ordered list of object properties.
type Properties []Property

// Names returns the property names in declaration order.
func (p Properties) Names() []string {
	names := make([]string, len(p))
	for i, prop := range p {
		names[i] = prop.Name
	}
	return names
}

// Get returns the property schema with the given name.
func (p Properties) Get(name string) (*Node, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema, true
		}
	}
	return nil, false
}

// ArrayShape holds the array validation keywords of a node.
// Items and ItemsArray are mutually exclusive.
type ArrayShape struct {
	Items      *Node
	ItemsArray []*Node
	MinItems   *int
	MaxItems   *int
}

// FixedLength returns the length when both bounds are present, equal and not
// negative.
func (a *ArrayShape) FixedLength() (int, bool) {
	if a.MinItems == nil || a.MaxItems == nil || *a.MinItems != *a.MaxItems || *a.MinItems < 0 {
		return 0, false
	}
	return *a.MinItems, true
}

// Definitions is an insertion-ordered table of named schemas.
// The zero value is an empty table ready to use.
type Definitions struct {
	names []string
	nodes map[string]*Node
}

// Set stores node under name. Replacing an existing entry keeps its position.
func (d *Definitions) Set(name string, node *Node) {
	if d.nodes == nil {
		d.nodes = make(map[string]*Node)
	}
	if _, ok := d.nodes[name]; !ok {
		d.names = append(d.names, name)
	}
	d.nodes[name] = node
}

// Get returns the definition named name.
func (d *Definitions) Get(name string) (*Node, bool) {
	n, ok := d.nodes[name]
	return n, ok
}

// Len returns the number of definitions.
func (d *Definitions) Len() int {
	return len(d.names)
}

// Names returns definition names in insertion order.
func (d *Definitions) Names() []string {
	return append([]string(nil), d.names...)
}

// All iterates over definitions in insertion order.
func (d *Definitions) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, name := range d.names {
			if !yield(name, d.nodes[name]) {
				return
			}
		}
	}
}
