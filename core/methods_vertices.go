// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex queries: HasVertex/Vertices/VertexCount/Neighbors/Degree.

package core

// HasVertex reports whether id is in the vertex set.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns the vertex set in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.vertices)
}

// VertexCount returns the size of the vertex set.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns a copy of adjacency[id] in insertion order. Parallel
// edges repeat the neighbor. A vertex in the vertex set with no incident
// edges yields an empty slice; an unknown vertex yields ErrVertexNotFound.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]int(nil), g.adjacency[id]...), nil
}

// Degree returns len(adjacency[id]), 0 for isolated or unknown vertices.
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
