// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/cycledecomp/core"
)

// FindCycle searches g for a simple cycle of exactly length edges.
//
// Returns (path, nil) with len(path) == length on success, (nil, nil) when
// no start vertex yields such a cycle, or (nil, err) on invalid input,
// cancellation, step-limit exhaustion or a hook error.
func FindCycle(g *core.Graph, length int, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if length < 1 {
		return nil, fmt.Errorf("dfs: FindCycle: length %d: %w", length, ErrInvalidLength)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// A simple cycle visits each vertex at most once.
	if length > g.VertexCount() {
		return nil, nil
	}

	s := &searcher{
		adj:    g.AdjacencyList(),
		length: length,
		opts:   &o,
	}
	for _, start := range g.Vertices() {
		p, err := s.from(start)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle(L=%d) from %d: %w", length, start, err)
		}
		if p != nil {
			return p, nil
		}
	}

	return nil, nil
}

// frame is one level of the explicit DFS stack.
type frame struct {
	id   int
	next int // index into adj[id] of the next neighbor to try
}

// searcher carries the per-call state shared by every start vertex.
type searcher struct {
	adj    map[int][]int
	length int
	opts   *Options
	steps  int
}

// from runs the bounded DFS rooted at start.
//
// Invariant: len(path) == len(stack)-1, and every vertex on the stack is in
// visited.
func (s *searcher) from(start int) (Path, error) {
	if len(s.adj[start]) == 0 {
		return nil, nil
	}
	if err := s.visit(start, 0); err != nil {
		return nil, err
	}

	visited := map[int]bool{start: true}
	path := make(Path, 0, s.length)
	stack := make([]frame, 1, s.length)
	stack[0] = frame{id: start}

	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.id != start {
			delete(visited, top.id)
			path = path[:len(path)-1]
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		depth := len(stack) - 1

		if depth == s.length-1 {
			if s.closes(top.id, start) {
				return append(path, core.Edge{From: top.id, To: start}), nil
			}
			pop()
			continue
		}

		nbrs := s.adj[top.id]
		if top.next >= len(nbrs) {
			pop()
			continue
		}
		next := nbrs[top.next]
		top.next++
		if visited[next] {
			continue
		}

		if err := s.step(); err != nil {
			return nil, err
		}
		if err := s.visit(next, depth+1); err != nil {
			return nil, err
		}
		visited[next] = true
		path = append(path, core.Edge{From: top.id, To: next})
		stack = append(stack, frame{id: next})
	}

	return nil, nil
}

// closes reports whether an edge id-start is available to close the walk.
// With length 2 the first step already used one id-start occurrence.
func (s *searcher) closes(id, start int) bool {
	need := 1
	if s.length == 2 {
		need = 2
	}
	n := 0
	for _, w := range s.adj[id] {
		if w == start {
			n++
		}
	}

	return n >= need
}

// step accounts one expansion against cancellation and the step budget.
func (s *searcher) step() error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}
	s.steps++
	if s.opts.StepLimit > 0 && s.steps > s.opts.StepLimit {
		return fmt.Errorf("%d steps: %w", s.opts.StepLimit, ErrStepLimit)
	}

	return nil
}

func (s *searcher) visit(id, depth int) error {
	if s.opts.OnVisit == nil {
		return nil
	}

	return s.opts.OnVisit(id, depth)
}
