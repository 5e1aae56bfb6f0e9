// Package cycledecomp splits undirected graphs into edge-disjoint cycles
// whose lengths are scheduled from the graph's edge count.
//
// What is inside:
//
//	core/       - integer-vertex adjacency-list Graph: AddEdge, RemoveEdge, Clone
//	queue/      - generic FIFO used to hand target lengths around
//	schedule/   - minimum cycle size m = E/3 and the FIFO of lengths summing to E
//	dfs/        - depth-bounded backtracking search for a cycle of exact length
//	decompose/  - the Scheduled → Searching → Found/NotFound → Done loop
//	builder/    - deterministic fixtures: cycles, complete graphs, wheels, Petersen
//	graphfile/  - YAML graph files with hot reload
//	cmd/cycledecomp - command-line front end
//
// Quick ASCII example: the 12-edge fixture splits into three 4-cycles:
//
//	    0
//	   / \          0 → 1 → 3 → 2 → 0
//	  1───2         1 → 2 → 5 → 4 → 1
//	  │╲ ╱│         3 → 4 → 6 → 5 → 3
//	  │ 3 │
//	  │╱ ╲│
//	  4───5
//	   \ /
//	    6
//
// The search returns the first cycle a depth-first walk reaches, so a run
// may leave edges uncovered; decompose.Result reports what was skipped and
// what remains.
package cycledecomp
