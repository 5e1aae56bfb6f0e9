// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge declarations, sentinel errors, options and NewGraph.
// Concurrency:
//   - One sync.RWMutex guards vertex set, adjacency map and edge counter.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates an edge whose two endpoints are the same vertex.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a pair of vertex IDs.
//
// On input (NewGraph, AddEdge) it is an unordered pair. Inside a search path
// it is a directed step From→To.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "(from, to)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.From, e.To)
}

// GraphOption configures NewGraph.
type GraphOption func(g *Graph)

// WithStrictVertices makes NewGraph reject edges whose endpoints were not
// listed in the vertex set.
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is an undirected multigraph over integer vertex IDs.
//
// vertices holds the vertex set; adjacency maps each vertex with at least one
// incident edge to its neighbors in insertion order. edgeCount is the number
// of undirected edge occurrences (len of all lists / 2).
type Graph struct {
	mu sync.RWMutex

	strict bool

	vertices  map[int]struct{}
	adjacency map[int][]int
	edgeCount int
}

// NewGraph builds a Graph from a vertex list and an edge list, inserting both
// directions of every edge in input order.
//
// Duplicate vertex IDs collapse. Duplicate edges accumulate. A self-loop
// aborts construction with ErrLoopNotAllowed; under WithStrictVertices an
// unknown endpoint aborts with ErrVertexNotFound. The edge slice is not
// retained.
//
// Complexity: O(V + E).
func NewGraph(vertices []int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := newEmpty()
	for _, opt := range opts {
		opt(g)
	}
	for _, v := range vertices {
		g.vertices[v] = struct{}{}
	}

	for i, e := range edges {
		if g.strict {
			if _, ok := g.vertices[e.From]; !ok {
				return nil, fmt.Errorf("core: NewGraph: edge %d %v: vertex %d: %w", i, e, e.From, ErrVertexNotFound)
			}
			if _, ok := g.vertices[e.To]; !ok {
				return nil, fmt.Errorf("core: NewGraph: edge %d %v: vertex %d: %w", i, e, e.To, ErrVertexNotFound)
			}
		}
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("core: NewGraph: edge %d %v: %w", i, e, err)
		}
	}

	return g, nil
}

func newEmpty() *Graph {
	return &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int][]int),
	}
}
