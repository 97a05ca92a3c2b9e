// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/zodgen/internal/jschema"

// Classify decides which shape a node denotes. The first matching rule wins:
//
//  1. $ref
//  2. enum (a single value is a literal)
//  3. oneOf
//  4. a single type
//  5. a type sequence
//  6. const without any type
//
// Classify returns nil for a node none of the rules match.
func Classify(n *jschema.Node) Shape {
	switch {
	case n == nil:
		return nil
	case n.Ref != "":
		return RefShape{Name: jschema.DefName(n.Ref)}
	case len(n.Enum) == 1:
		return LiteralShape{Value: n.Enum[0]}
	case len(n.Enum) > 1:
		return EnumShape{Values: n.Enum}
	case len(n.OneOf) > 0:
		return UnionShape{Branches: n.OneOf}
	case n.Type != "":
		return TypedShape{Type: n.Type, Node: n}
	case len(n.Types) > 0:
		return MultiTypedShape{Types: n.Types, Node: n}
	case n.Const != nil:
		return LiteralShape{Value: *n.Const}
	}
	return nil
}
