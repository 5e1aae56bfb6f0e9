// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and display: Clone/AdjacencyList/String.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

import (
	"fmt"
	"strings"
)

// Clone returns a deep copy of the Graph: vertex set, adjacency lists and
// options. Mutating the clone never affects g and vice versa.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := newEmpty()
	clone.strict = g.strict
	clone.edgeCount = g.edgeCount
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for id, list := range g.adjacency {
		clone.adjacency[id] = append([]int(nil), list...)
	}

	return clone
}

// AdjacencyList returns a deep copy of the adjacency map.
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for id, list := range g.adjacency {
		out[id] = append([]int(nil), list...)
	}

	return out
}

// String renders the adjacency map one vertex per line, ascending:
//
//	0: [1 2]
//	1: [0 2 3 4]
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for _, id := range sortedKeys(g.adjacency) {
		fmt.Fprintf(&sb, "%d: %v\n", id, g.adjacency[id])
	}

	return sb.String()
}
