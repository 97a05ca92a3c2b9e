// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/zodgen/internal/jschema"

// Emit renders n through resolver. It reports false when n, or a child whose
// failure cannot be tolerated, has no representation in the target dialect.
func Emit(n *jschema.Node, resolver ExprResolver) (string, bool) {
	e := emitter{resolver: resolver}
	return e.node(n)
}

type emitter struct {
	resolver ExprResolver
}

func (e emitter) node(n *jschema.Node) (string, bool) {
	switch s := Classify(n).(type) {
	case RefShape:
		return e.resolver.RefExpr(s.Name), true
	case LiteralShape:
		return e.resolver.LiteralExpr(s.Value), true
	case EnumShape:
		return e.resolver.EnumExpr(s.Values), true
	case UnionShape:
		branches, ok := e.tolerant(s.Branches)
		if !ok {
			return "", false
		}
		if field, ok := InferDiscriminator(s.Branches); ok {
			return e.resolver.DiscriminatedUnionExpr(field, branches), true
		}
		return e.resolver.UnionExpr(branches), true
	case TypedShape:
		return e.typed(s.Node, s.Type)
	case MultiTypedShape:
		branches := make([]string, 0, len(s.Types))
		for _, t := range s.Types {
			expr, ok := e.typed(s.Node, t)
			if !ok {
				return "", false
			}
			branches = append(branches, expr)
		}
		return e.resolver.UnionExpr(branches), true
	}
	return "", false
}

// tolerant renders every node that can be rendered and drops the rest.
// It fails only when nothing is left.
func (e emitter) tolerant(nodes []*jschema.Node) ([]string, bool) {
	exprs := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if expr, ok := e.node(n); ok {
			exprs = append(exprs, expr)
		}
	}
	return exprs, len(exprs) > 0
}

// strict renders every node or fails.
func (e emitter) strict(nodes []*jschema.Node) ([]string, bool) {
	exprs := make([]string, 0, len(nodes))
	for _, n := range nodes {
		expr, ok := e.node(n)
		if !ok {
			return nil, false
		}
		exprs = append(exprs, expr)
	}
	return exprs, true
}

// typed renders n as category t. A const on the node takes precedence.
func (e emitter) typed(n *jschema.Node, t jschema.InstanceType) (string, bool) {
	if n.Const != nil {
		return e.resolver.LiteralExpr(*n.Const), true
	}

	switch t {
	case jschema.Object:
		return e.object(n.Object)
	case jschema.Array:
		return e.array(n.Array)
	case jschema.Null, jschema.Boolean, jschema.Number, jschema.Integer, jschema.String:
		return e.resolver.PrimitiveExpr(t, n.Format), true
	}
	return "", false
}

func (e emitter) object(obj *jschema.ObjectShape) (string, bool) {
	if obj == nil {
		return "", false
	}

	// additional properties and no named properties: a map, not a record
	if obj.AdditionalProperties != nil && len(obj.Properties) == 0 {
		value, ok := e.node(obj.AdditionalProperties)
		if !ok {
			return "", false
		}
		return e.resolver.RecordExpr(value), true
	}

	fields := make([]Field, 0, len(obj.Properties))
	for _, p := range obj.Properties {
		expr, ok := e.node(p.Schema)
		if !ok {
			return "", false
		}
		fields = append(fields, Field{Name: p.Name, Type: expr})
	}
	return e.resolver.ObjectExpr(fields), true
}

func (e emitter) array(arr *jschema.ArrayShape) (string, bool) {
	if arr == nil {
		return "", false
	}

	if length, ok := arr.FixedLength(); ok {
		return e.tuple(arr, length)
	}

	var elem string
	switch {
	case arr.Items != nil:
		expr, ok := e.node(arr.Items)
		if !ok {
			return "", false
		}
		elem = expr
	case len(arr.ItemsArray) == 1:
		expr, ok := e.node(arr.ItemsArray[0])
		if !ok {
			return "", false
		}
		elem = expr
	case len(arr.ItemsArray) > 1:
		branches, ok := e.tolerant(arr.ItemsArray)
		if !ok {
			return "", false
		}
		elem = e.resolver.UnionExpr(branches)
	default:
		return "", false
	}
	return e.resolver.ArrayExpr(elem), true
}

// MaxRepeatedTupleLength is the longest tuple a single item schema is repeated
// into. Longer fixed-length arrays render as plain arrays.
const MaxRepeatedTupleLength = 256

// tuple renders a fixed-length array. A single item schema fills every
// position. Positional items are strict, unlike the tolerant branches of an
// item union: skipping a failed item would shift the ones after it, so any
// failure fails the tuple.
func (e emitter) tuple(arr *jschema.ArrayShape, length int) (string, bool) {
	if len(arr.ItemsArray) > 1 {
		items, ok := e.strict(arr.ItemsArray)
		if !ok {
			return "", false
		}
		return e.resolver.TupleExpr(items), true
	}

	item := arr.Items
	if item == nil && len(arr.ItemsArray) == 1 {
		item = arr.ItemsArray[0]
	}
	if item == nil {
		return "", false
	}
	expr, ok := e.node(item)
	if !ok {
		return "", false
	}
	if length > MaxRepeatedTupleLength {
		return e.resolver.ArrayExpr(expr), true
	}
	items := make([]string, length)
	for i := range items {
		items[i] = expr
	}
	return e.resolver.TupleExpr(items), true
}
