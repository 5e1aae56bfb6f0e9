// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cycledecomp/core"
)

// Path is an ordered sequence of directed steps describing a closed walk:
// path[i].To == path[i+1].From and path[len-1].To == path[0].From.
type Path []core.Edge

// Vertices returns the walk as a closed vertex sequence [v0 v1 ... v0].
// An empty path yields nil.
func (p Path) Vertices() []int {
	if len(p) == 0 {
		return nil
	}
	out := make([]int, 0, len(p)+1)
	out = append(out, p[0].From)
	for _, e := range p {
		out = append(out, e.To)
	}

	return out
}

// String renders the walk as "0 → 1 → 3 → 2 → 0".
func (p Path) String() string {
	vs := p.Vertices()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}

// Verify checks that p is a simple cycle of exactly length edges in g:
// consecutive steps chain, every step is an edge of g, intermediate vertices
// are distinct and the last step returns to the start. Parallel edges are
// counted, so a 2-cycle needs multiplicity 2.
func (p Path) Verify(g *core.Graph, length int) error {
	if len(p) != length {
		return fmt.Errorf("dfs: Verify: %d edges, want %d: %w", len(p), length, ErrInvalidPath)
	}
	if length == 0 {
		return nil
	}

	used := make(map[core.Edge]int, len(p))
	seen := make(map[int]bool, len(p))
	for i, e := range p {
		if i > 0 && p[i-1].To != e.From {
			return fmt.Errorf("dfs: Verify: step %d %v does not continue from %d: %w", i, e, p[i-1].To, ErrInvalidPath)
		}
		if seen[e.From] {
			return fmt.Errorf("dfs: Verify: vertex %d repeated: %w", e.From, ErrInvalidPath)
		}
		seen[e.From] = true

		key := e
		if key.From > key.To {
			key.From, key.To = key.To, key.From
		}
		used[key]++
		if used[key] > g.Multiplicity(e.From, e.To) {
			return fmt.Errorf("dfs: Verify: step %d %v not in graph: %w", i, e, ErrInvalidPath)
		}
	}
	if p[len(p)-1].To != p[0].From {
		return fmt.Errorf("dfs: Verify: walk ends at %d, not %d: %w", p[len(p)-1].To, p[0].From, ErrInvalidPath)
	}

	return nil
}
