// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/cycledecomp/dfs"
)

// BenchmarkFindCycle_PetersenHamiltonian measures an exhaustive miss: the
// Petersen graph has no 10-cycle, so every branch is explored.
func BenchmarkFindCycle_PetersenHamiltonian(b *testing.B) {
	g := petersen(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCycle(g, 10)
	}
}

// BenchmarkFindCycle_K8Hamiltonian measures a quick hit on a dense graph.
func BenchmarkFindCycle_K8Hamiltonian(b *testing.B) {
	g := complete(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCycle(g, 8)
	}
}
