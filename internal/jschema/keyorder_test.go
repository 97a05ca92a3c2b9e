// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeyOrderFromJSON(t *testing.T) {
	order, err := ExtractKeyOrderFromJSON([]byte(`{
		"properties": {"z": {}, "a": {"properties": {"y": {}, "b": {}}}},
		"oneOf": [{"properties": {"k": {}, "j": {}}}],
		"definitions": {"a/b": {"properties": {"2": {}, "1": {}}}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"properties", "oneOf", "definitions"}, order[""])
	assert.Equal(t, []string{"z", "a"}, order["/properties"])
	assert.Equal(t, []string{"y", "b"}, order["/properties/a/properties"])
	assert.Equal(t, []string{"k", "j"}, order["/oneOf/0/properties"])
	assert.Equal(t, []string{"2", "1"}, order["/definitions/a~1b/properties"])
}

func TestExtractKeyOrderFromJSON_Invalid(t *testing.T) {
	_, err := ExtractKeyOrderFromJSON([]byte(`{"a": `))
	require.Error(t, err)
}

func TestExtractKeyOrderFromYAML(t *testing.T) {
	order, err := ExtractKeyOrderFromYAML([]byte(`
properties:
  z: {}
  a:
    properties:
      y: {}
      b: {}
items:
  - properties:
      second: {}
      first: {}
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"properties", "items"}, order[""])
	assert.Equal(t, []string{"z", "a"}, order["/properties"])
	assert.Equal(t, []string{"y", "b"}, order["/properties/a/properties"])
	assert.Equal(t, []string{"second", "first"}, order["/items/0/properties"])
}

func TestOrdered(t *testing.T) {
	order := KeyOrder{"/properties": {"c", "missing", "a"}}
	m := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}

	assert.Equal(t, []string{"c", "a", "b", "d"}, Ordered(order, "/properties", m))
	assert.Equal(t, []string{"a", "b", "c", "d"}, Ordered(nil, "/properties", m))
}
