// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Multiplicity/Edges/EdgeCount.
// Determinism:
//   - Edges() is ordered by ascending From, then by position in adjacency[From].
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddEdge appends v to adjacency[u] and u to adjacency[v], creating either
// entry (and vertex-set membership) if absent.
//
// Adding an edge that already exists is allowed: the multiplicity grows by
// one. u == v returns ErrLoopNotAllowed and leaves the graph untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[u] = struct{}{}
	g.vertices[v] = struct{}{}
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.edgeCount++

	return nil
}

// RemoveEdge removes one occurrence of v from adjacency[u] and one occurrence
// of u from adjacency[v]. A vertex whose list becomes empty is deleted from
// both the adjacency map and the vertex set.
//
// It reports whether an edge was removed; removing an absent edge is a no-op.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := indexOf(g.adjacency[u], v)
	j := indexOf(g.adjacency[v], u)
	if i < 0 || j < 0 {
		return false
	}

	g.dropAt(u, i)
	g.dropAt(v, j)
	g.edgeCount--

	return true
}

// dropAt removes adjacency[id][i] keeping the order of the remaining
// neighbors, and forgets id entirely once its list is empty.
// Caller must hold the write lock.
func (g *Graph) dropAt(id, i int) {
	list := g.adjacency[id]
	list = append(list[:i], list[i+1:]...)
	if len(list) == 0 {
		delete(g.adjacency, id)
		delete(g.vertices, id)

		return
	}
	g.adjacency[id] = list
}

// HasEdge reports whether at least one edge u–v exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return indexOf(g.adjacency[u], v) >= 0
}

// Multiplicity returns the number of parallel u–v edges.
func (g *Graph) Multiplicity(u, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, w := range g.adjacency[u] {
		if w == v {
			n++
		}
	}

	return n
}

// Edges returns every edge occurrence once, as {From: u, To: v} with u < v,
// ordered by u ascending and then by position in adjacency[u].
//
// The result is derived from the adjacency map, so it always reflects
// removals.
// Complexity: O(E + V log V).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, u := range sortedKeys(g.adjacency) {
		for _, v := range g.adjacency[u] {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected edge occurrences.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func indexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
