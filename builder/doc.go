// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.Graph fixtures: rings,
// complete graphs, wheels, paths, the Petersen graph and the 7-vertex,
// 12-edge decomposition fixture.
//
// Every constructor numbers its vertices from 0 and emits edges in a fixed
// order, so adjacency lists (and therefore dfs.FindCycle results) are
// reproducible. Constructors compose through BuildGraph; Parse turns a
// "kind:n" string into a Constructor for command-line use.
//
//	g, _ := builder.BuildGraph(builder.Complete(7)) // 21 edges
//	c, _ := builder.Parse("wheel:6")
package builder
