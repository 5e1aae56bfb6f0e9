// SPDX-License-Identifier: MIT
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3, edges i–(i+1)%n for i = 0..n-1.
//   • Path:  n ≥ 2, edges i–(i+1) for i = 0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycledecomp/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor for the n-vertex ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor for the n-vertex path P_n (acyclic).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
