// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// Field represents a single property of a fixed-shape object.
type Field struct {
	Name string // property name as declared in the schema
	Type string // fully rendered expression for the property value
}
