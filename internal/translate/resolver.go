// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/zodgen/internal/jschema"

// ExprResolver renders classified schema shapes as target-language expressions.
// Each dialect implements this interface; the walk itself lives in this package.
type ExprResolver interface {
	// RefExpr returns a deferred reference to a named definition.
	// It must not expand the definition, which may be recursive.
	RefExpr(defName string) string

	// LiteralExpr matches exactly one value.
	LiteralExpr(value any) string

	// EnumExpr matches any of values (at least two), in order.
	EnumExpr(values []any) string

	// UnionExpr matches any of the already rendered branches.
	UnionExpr(branches []string) string

	// DiscriminatedUnionExpr is a union tagged by the shared field.
	DiscriminatedUnionExpr(field string, branches []string) string

	// PrimitiveExpr maps a non-composite category to an expression.
	// Format refines strings, allowing "date-time" to override "string".
	PrimitiveExpr(t jschema.InstanceType, format string) string

	// RecordExpr is a homogeneous key to value map.
	RecordExpr(value string) string

	// ObjectExpr is a fixed-shape record with fields in declaration order.
	ObjectExpr(fields []Field) string

	// ArrayExpr is a homogeneous array.
	ArrayExpr(elem string) string

	// TupleExpr is a fixed-length positional array.
	TupleExpr(items []string) string

	// Declare binds expr to name and derives the static type alias.
	Declare(name, expr string) string
}
