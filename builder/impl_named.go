// SPDX-License-Identifier: MIT
//
// impl_named.go - fixed, named graphs.

package builder

import "github.com/katalvlaran/cycledecomp/core"

const (
	methodPetersen = "Petersen"
	methodFixture  = "Fixture"
)

// fixtureEdges is the 7-vertex, 12-edge graph that decomposes into three
// edge-disjoint 4-cycles.
//
//	    0
//	   / \
//	  1───2
//	  │╲ ╱│
//	  │ 3 │
//	  │╱ ╲│
//	  4───5
//	   \ /
//	    6
var fixtureEdges = [][2]int{
	{0, 1}, {0, 2}, {1, 2}, {1, 3}, {1, 4}, {2, 3},
	{2, 5}, {3, 4}, {3, 5}, {4, 5}, {4, 6}, {5, 6},
}

// Fixture returns a Constructor for the 7-vertex, 12-edge decomposition
// fixture.
func Fixture() Constructor {
	return func(g *core.Graph) error {
		for _, e := range fixtureEdges {
			if err := addEdge(g, methodFixture, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Petersen returns a Constructor for the Petersen graph: outer ring 0..4,
// spokes i–(i+5), inner pentagram (5+i)–(5+(i+2)%5). It is 3-regular with
// girth 5 and has no Hamiltonian cycle.
func Petersen() Constructor {
	return func(g *core.Graph) error {
		for i := 0; i < 5; i++ {
			if err := addEdge(g, methodPetersen, i, (i+1)%5); err != nil {
				return err
			}
			if err := addEdge(g, methodPetersen, i, i+5); err != nil {
				return err
			}
			if err := addEdge(g, methodPetersen, 5+i, 5+(i+2)%5); err != nil {
				return err
			}
		}

		return nil
	}
}
