// SPDX-License-Identifier: MIT

package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycledecomp/builder"
	"github.com/katalvlaran/cycledecomp/decompose"
)

// TestDecompose_CompleteSeven splits K7 into three Hamiltonian cycles.
func TestDecompose_CompleteSeven(t *testing.T) {
	g, err := builder.BuildGraph(builder.Complete(7))
	require.NoError(t, err)

	res, err := decompose.Decompose(g, decompose.WithLogger(quietLogger()), decompose.WithRequireFullCover())
	require.NoError(t, err)

	assert.Equal(t, []int{7, 7, 7}, res.Sizes)
	require.Len(t, res.Cycles, 3)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 0}, res.Cycles[0].Path.Vertices())
	assert.Equal(t, []int{0, 2, 4, 1, 6, 3, 5, 0}, res.Cycles[1].Path.Vertices())
	assert.Equal(t, []int{0, 3, 1, 5, 2, 6, 4, 0}, res.Cycles[2].Path.Vertices())
	for _, c := range res.Cycles {
		assert.NoError(t, c.Path.Verify(g, 7))
	}
}

// TestDecompose_Generated checks the bookkeeping invariants on every builder
// topology: found cycles are valid in the original graph and covered plus
// remaining edges add up to the total.
func TestDecompose_Generated(t *testing.T) {
	for _, kind := range []string{"cycle:6", "complete:5", "complete:6", "wheel:7", "petersen", "fixture", "path:5"} {
		t.Run(kind, func(t *testing.T) {
			c, err := builder.Parse(kind)
			require.NoError(t, err)
			g, err := builder.BuildGraph(c)
			require.NoError(t, err)

			res, err := decompose.Decompose(g, decompose.WithLogger(quietLogger()))
			require.NoError(t, err)

			covered := 0
			for _, cyc := range res.Cycles {
				require.NoError(t, cyc.Path.Verify(g, cyc.Length))
				covered += cyc.Length
			}
			assert.Equal(t, covered, res.CoveredEdges)
			assert.Equal(t, res.TotalEdges, res.CoveredEdges+len(res.Remaining))
			assert.Equal(t, len(res.Sizes), len(res.Cycles)+len(res.Skipped))
			assert.Equal(t, g.EdgeCount(), res.TotalEdges)
		})
	}
}
