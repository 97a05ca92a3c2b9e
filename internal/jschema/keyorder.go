// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyOrder maps the JSON Pointer of every object in a document to its keys in
// source order. The root object has the pointer "".
type KeyOrder map[string][]string

// Ordered returns the keys of m in the order recorded for pointer. Keys missing
// from the recorded order are appended in sorted order.
func Ordered[V any](order KeyOrder, pointer string, m map[string]V) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, key := range order[pointer] {
		if _, ok := m[key]; ok && !seen[key] {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointerJoin appends reference tokens to a JSON Pointer.
func pointerJoin(pointer string, tokens ...string) string {
	var sb strings.Builder
	sb.WriteString(pointer)
	for _, tok := range tokens {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(tok))
	}
	return sb.String()
}

// ExtractKeyOrderFromJSON parses raw JSON and records the key order of every object.
func ExtractKeyOrderFromJSON(data []byte) (KeyOrder, error) {
	result := make(KeyOrder)

	var extract func(dec *json.Decoder, pointer string) error
	extract = func(dec *json.Decoder, pointer string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		t, ok := token.(json.Delim)
		if !ok {
			return nil
		}
		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyToken.(string)
				if !ok {
					return fmt.Errorf("unexpected object key %v", keyToken)
				}
				keys = append(keys, key)
				if err := extract(dec, pointerJoin(pointer, key)); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			result[pointer] = keys
		case '[':
			for i := 0; dec.More(); i++ {
				if err := extract(dec, pointerJoin(pointer, strconv.Itoa(i))); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := extract(dec, ""); err != nil {
		return nil, fmt.Errorf("failed to extract key order: %w", err)
	}
	return result, nil
}

// ExtractKeyOrderFromYAML parses raw YAML and records the key order of every mapping.
func ExtractKeyOrderFromYAML(data []byte) (KeyOrder, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to extract key order: %w", err)
	}

	result := make(KeyOrder)
	var extract func(n *yaml.Node, pointer string)
	extract = func(n *yaml.Node, pointer string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				extract(c, pointer)
			}
		case yaml.AliasNode:
			if n.Alias != nil {
				extract(n.Alias, pointer)
			}
		case yaml.MappingNode:
			keys := make([]string, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)
				extract(n.Content[i+1], pointerJoin(pointer, key))
			}
			result[pointer] = keys
		case yaml.SequenceNode:
			for i, c := range n.Content {
				extract(c, pointerJoin(pointer, strconv.Itoa(i)))
			}
		}
	}
	extract(&doc, "")
	return result, nil
}
