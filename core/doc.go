// SPDX-License-Identifier: MIT

// Package core provides the integer-vertex, adjacency-list Graph that every
// other cycledecomp package works on.
//
// The Graph G = (V,E) is undirected and keeps, for each vertex, the ordered
// list of its neighbors exactly as edges were inserted:
//
//	adjacency[u] = [v1, v2, ...]   // insertion order, duplicates kept
//
// Contracts:
//
//   - Symmetry: v appears in adjacency[u] exactly as many times as u
//     appears in adjacency[v]. AddEdge and RemoveEdge update both directions
//     under a single lock.
//   - Parallel edges accumulate (AddEdge(u,v) twice ⇒ multiplicity 2).
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - RemoveEdge deletes a vertex from both the adjacency map and the vertex
//     set as soon as its neighbor list becomes empty. Removing an absent edge
//     is a no-op.
//   - The edge list handed to NewGraph only seeds the adjacency map; it is not
//     retained. Edges() is always derived from the adjacency map.
//   - Vertices() is ascending; Neighbors() keeps insertion order.
//
// Core methods:
//
//	NewGraph(vertices, edges, opts...) (*Graph, error)
//	AddEdge(u, v int) error          // O(1) amortized
//	RemoveEdge(u, v int) bool        // O(deg(u)+deg(v))
//	HasVertex(v) / HasEdge(u, v) / Multiplicity(u, v)
//	Neighbors(v) ([]int, error)      // copy, insertion order
//	Vertices() []int                 // O(V log V)
//	Edges() []Edge                   // O(E + V log V)
//	VertexCount() / EdgeCount()      // O(1)
//	AdjacencyList() map[int][]int    // deep copy
//	Clone() *Graph                   // deep copy
//
// Options:
//
//	WithStrictVertices() – NewGraph rejects edges whose endpoints are not in
//	                       the vertex list (ErrVertexNotFound). Without it the
//	                       adjacency map is authoritative and unknown endpoints
//	                       join the vertex set.
//
// Errors:
//
//	ErrLoopNotAllowed  – edge with identical endpoints
//	ErrVertexNotFound  – unknown vertex (strict construction, Neighbors)
package core
