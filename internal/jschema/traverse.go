// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// Traverse returns an iterator over all nodes in the tree rooted at node.
// References are reported but never followed; shared subtrees are yielded once.
func Traverse(node *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		visited := make(map[*Node]struct{})
		traverseWithVisited(node, yield, visited)
	}
}

func traverseWithVisited(node *Node, yield func(*Node) bool, visited map[*Node]struct{}) bool {
	if node == nil {
		return true
	}
	if _, ok := visited[node]; ok {
		return true
	}
	visited[node] = struct{}{}

	if !yield(node) {
		return false
	}

	for _, s := range node.OneOf {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}

	// Objects
	if node.Object != nil {
		for _, p := range node.Object.Properties {
			if !traverseWithVisited(p.Schema, yield, visited) {
				return false
			}
		}
		if !traverseWithVisited(node.Object.AdditionalProperties, yield, visited) {
			return false
		}
	}

	// Arrays
	if node.Array != nil {
		if !traverseWithVisited(node.Array.Items, yield, visited) {
			return false
		}
		for _, s := range node.Array.ItemsArray {
			if !traverseWithVisited(s, yield, visited) {
				return false
			}
		}
	}

	return true
}
