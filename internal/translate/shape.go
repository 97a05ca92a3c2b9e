// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"

	"github.com/dacolabs/zodgen/internal/jschema"
)

// Shape is the classification of one schema node. The concrete types are
// RefShape, LiteralShape, EnumShape, UnionShape, TypedShape and MultiTypedShape.
type Shape interface {
	fmt.Stringer
	isShape()
}

// RefShape is a reference to a named definition.
type RefShape struct {
	Name string
}

// LiteralShape matches exactly one value.
type LiteralShape struct {
	Value any
}

// EnumShape matches one of several values.
type EnumShape struct {
	Values []any
}

// UnionShape is a oneOf over child schemas.
type UnionShape struct {
	Branches []*jschema.Node
}

// TypedShape is a node with a single instance type.
type TypedShape struct {
	Type jschema.InstanceType
	Node *jschema.Node
}

// MultiTypedShape is a node whose type is a sequence of categories.
type MultiTypedShape struct {
	Types []jschema.InstanceType
	Node  *jschema.Node
}

func (RefShape) isShape()        {}
func (LiteralShape) isShape()    {}
func (EnumShape) isShape()       {}
func (UnionShape) isShape()      {}
func (TypedShape) isShape()      {}
func (MultiTypedShape) isShape() {}

func (s RefShape) String() string { return "ref " + s.Name }

func (s LiteralShape) String() string { return fmt.Sprintf("literal %v", s.Value) }

func (s EnumShape) String() string {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = fmt.Sprint(v)
	}
	return "enum " + strings.Join(parts, " | ")
}

func (s UnionShape) String() string { return fmt.Sprintf("oneOf (%d branches)", len(s.Branches)) }

func (s TypedShape) String() string {
	str := string(s.Type)
	if s.Node.Format != "" {
		str += " (" + s.Node.Format + ")"
	}
	if s.Node.Const != nil {
		str += fmt.Sprintf(" const %v", *s.Node.Const)
	}
	return str
}

func (s MultiTypedShape) String() string {
	parts := make([]string, len(s.Types))
	for i, t := range s.Types {
		parts[i] = string(t)
	}
	return strings.Join(parts, " | ")
}
