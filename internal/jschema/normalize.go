// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// source is a schema document rewritten into the form jsonschema.Schema
// decodes, together with what that decoding would otherwise lose. Pointers
// are in the source document's pointer space.
type source struct {
	data []byte
	// literals holds const and enum values with numbers kept as json.Number.
	literals map[string]literal
	// positional marks schemas whose positional items were written as a
	// draft-07 "items" array and have been moved to "prefixItems".
	positional map[string]bool
}

type literal struct {
	Const *any
	Enum  []any
}

type valueKind int

const (
	schemaValue valueKind = iota
	schemaMap
	dataValue
)

// Keywords whose value is an object of named subschemas.
var schemaMapKeywords = map[string]bool{
	"properties":        true,
	"patternProperties": true,
	"definitions":       true,
	"$defs":             true,
	"dependentSchemas":  true,
}

// Keywords whose value is instance data rather than a schema.
var dataKeywords = map[string]bool{
	"const":    true,
	"enum":     true,
	"default":  true,
	"examples": true,
}

var errTrailingData = errors.New("unexpected data after top-level value")

func normalizeJSON(data []byte) (*source, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return normalize(raw)
}

func normalizeYAML(data []byte) (*source, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(raw)
}

func normalize(raw any) (*source, error) {
	src := &source{
		literals:   map[string]literal{},
		positional: map[string]bool{},
	}
	data, err := json.Marshal(src.walk(raw, "", schemaValue))
	if err != nil {
		return nil, err
	}
	src.data = data
	return src, nil
}

func (src *source) walk(v any, pointer string, kind valueKind) any {
	switch v := v.(type) {
	case map[string]any:
		return src.object(v, pointer, kind)
	case map[any]any:
		// YAML allows non-string keys such as 200; JSON object keys are strings.
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return src.object(m, pointer, kind)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = src.walk(item, pointerJoin(pointer, strconv.Itoa(i)), kind)
		}
		return out
	case int:
		return json.Number(strconv.Itoa(v))
	case int64:
		return json.Number(strconv.FormatInt(v, 10))
	case uint64:
		return json.Number(strconv.FormatUint(v, 10))
	default:
		return v
	}
}

func (src *source) object(m map[string]any, pointer string, kind valueKind) map[string]any {
	out := make(map[string]any, len(m))
	for k, val := range m {
		child := schemaValue
		switch {
		case kind == dataValue || (kind == schemaValue && dataKeywords[k]):
			child = dataValue
		case kind == schemaValue && schemaMapKeywords[k]:
			child = schemaMap
		}
		out[k] = src.walk(val, pointerJoin(pointer, k), child)
	}
	if kind != schemaValue {
		return out
	}

	if items, ok := out["items"].([]any); ok {
		if _, set := out["prefixItems"]; !set {
			out["prefixItems"] = items
			delete(out, "items")
			src.positional[pointer] = true
		}
	}

	var lit literal
	if c, ok := out["const"]; ok {
		lit.Const = &c
	}
	if e, ok := out["enum"].([]any); ok {
		lit.Enum = e
	}
	if lit.Const != nil || lit.Enum != nil {
		src.literals[pointer] = lit
	}
	return out
}
