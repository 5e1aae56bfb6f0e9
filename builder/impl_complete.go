// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and Wheel(n).
//
// Contract:
//   • Complete: n ≥ 2, edges i–j for i < j in lexicographic order; n(n-1)/2 edges.
//   • Wheel:    n ≥ 4, ring 0..n-2 (Cycle(n-1)) then spokes (n-1)–i for i = 0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycledecomp/core"
)

const (
	methodComplete   = "Complete"
	methodWheel      = "Wheel"
	minCompleteNodes = 2
	minWheelNodes    = 4
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a ring of n-1 vertices plus hub n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n - 1)(g); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addEdge(g, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
