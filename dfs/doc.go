// SPDX-License-Identifier: MIT

// Package dfs implements a depth-bounded backtracking search for a simple
// cycle of an exact length on a core.Graph.
//
// What:
//
//   - FindCycle(g, L) returns the first cycle of exactly L edges that a
//     depth-first walk reaches, or an empty Path when none exists.
//   - Start vertices are tried in g.Vertices() order (ascending); neighbors
//     in adjacency insertion order. The result is the first closing walk in
//     that order, not a canonical or minimal one.
//   - A walk keeps a visited set that includes the start vertex. The start is
//     re-entered only by the closing step, at depth L-1, and only if the
//     current vertex is adjacent to it. For L == 2 the closing step must use
//     a second parallel edge.
//
// How:
//
//   - The search runs on an explicit stack of frames (vertex, next neighbor
//     index), so depth is bounded by L and never by the Go call stack.
//   - The adjacency map is snapshotted once per call; the graph is never
//     mutated.
//   - L > VertexCount() short-circuits to "not found".
//
// Complexity:
//
//   - Time: O(V · Δ^(L-1)) worst case (Δ = max degree), no memoization.
//   - Memory: O(V + E) snapshot + O(L) stack.
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrInvalidLength  L < 1
//   - ErrStepLimit      WithStepLimit budget exhausted
//   - context errors    cancellation via WithContext
//   - hook errors       propagated from OnVisit
//
// "Not found" is an empty Path with a nil error, never an error.
package dfs
