// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dacolabs/zodgen/internal/jschema"
	"github.com/dacolabs/zodgen/internal/translate"
	"github.com/goccy/go-json"
)

type resolver struct{}

func (r *resolver) RefExpr(defName string) string {
	return "z.lazy(() => " + defName + ")"
}

func (r *resolver) LiteralExpr(value any) string {
	return "z.literal(" + literal(value) + ")"
}

func (r *resolver) EnumExpr(values []any) string {
	parts := make([]string, len(values))
	allStrings := true
	for i, v := range values {
		if _, ok := v.(string); !ok {
			allStrings = false
		}
		parts[i] = literal(v)
	}
	if allStrings {
		return "z.enum([" + list(parts) + "])"
	}
	for i, v := range values {
		parts[i] = r.LiteralExpr(v)
	}
	return r.UnionExpr(parts)
}

func (r *resolver) UnionExpr(branches []string) string {
	return "z.union([" + list(branches) + "])"
}

func (r *resolver) DiscriminatedUnionExpr(field string, branches []string) string {
	return "z.discriminatedUnion(" + literal(field) + ", [" + list(branches) + "])"
}

func (r *resolver) PrimitiveExpr(t jschema.InstanceType, format string) string {
	switch t {
	case jschema.Null:
		return "z.null()"
	case jschema.Boolean:
		return "z.boolean()"
	case jschema.Number:
		return "z.number()"
	case jschema.Integer:
		return "z.number().int()"
	case jschema.String:
		if format == jschema.DateTimeFormat {
			return "z.coerce.date()"
		}
		return "z.string()"
	default:
		return "z.unknown()"
	}
}

func (r *resolver) RecordExpr(value string) string {
	return "z.record(" + value + ")"
}

func (r *resolver) ObjectExpr(fields []translate.Field) string {
	var sb strings.Builder
	sb.WriteString("z.object({")
	for _, f := range fields {
		sb.WriteString(propertyKey(f.Name))
		sb.WriteString(": ")
		sb.WriteString(f.Type)
		sb.WriteString(", ")
	}
	sb.WriteString("})")
	return sb.String()
}

func (r *resolver) ArrayExpr(elem string) string {
	return "z.array(" + elem + ")"
}

func (r *resolver) TupleExpr(items []string) string {
	return "z.tuple([" + list(items) + "])"
}

func (r *resolver) Declare(name, expr string) string {
	return fmt.Sprintf("export const %s = %s;\nexport type %s = z.infer<typeof %s>;\n", name, expr, name, name)
}

// list renders exprs as array elements, each followed by ", ".
func list(exprs []string) string {
	var sb strings.Builder
	for _, e := range exprs {
		sb.WriteString(e)
		sb.WriteString(", ")
	}
	return sb.String()
}

// literal renders a JSON value as a TypeScript literal.
func literal(v any) string {
	data, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return string(data)
}

// propertyKey quotes name unless it is a valid identifier.
func propertyKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return literal(name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
