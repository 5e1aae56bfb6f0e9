// SPDX-License-Identifier: MIT

package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycledecomp/builder"
	"github.com/katalvlaran/cycledecomp/core"
	"github.com/katalvlaran/cycledecomp/graphfile"
	"github.com/katalvlaran/cycledecomp/schedule"
)

const fixtureYAML = `
vertices: [0, 1, 2, 3, 4, 5, 6]
edges:
  - [0, 1]
  - [0, 2]
  - [1, 2]
  - [1, 3]
  - [1, 4]
  - [2, 3]
  - [2, 5]
  - [3, 4]
  - [3, 5]
  - [4, 5]
  - [4, 6]
  - [5, 6]
schedule:
  divisor: 3
`

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDecode_Fixture(t *testing.T) {
	f, err := graphfile.Decode(strings.NewReader(fixtureYAML))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, f.Vertices)
	assert.Len(t, f.Edges, 12)
	assert.Equal(t, 3, f.Divisor())

	g, err := f.Graph()
	require.NoError(t, err)
	want, err := builder.BuildGraph(builder.Fixture())
	require.NoError(t, err)
	assert.Equal(t, want.AdjacencyList(), g.AdjacencyList())
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"triple edge":   "edges:\n  - [0, 1, 2]\n",
		"unknown field": "vertices: [0]\ncolour: red\n",
		"bad yaml":      "edges: [[0, 1]\n",
		"neg divisor":   "schedule:\n  divisor: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphfile.Decode(strings.NewReader(body))
			assert.Error(t, err)
		})
	}

	_, err := graphfile.Decode(strings.NewReader("edges:\n  - [7]\n"))
	assert.ErrorIs(t, err, graphfile.ErrMalformedEdge)
	_, err = graphfile.Decode(strings.NewReader("schedule:\n  divisor: -2\n"))
	assert.ErrorIs(t, err, schedule.ErrBadDivisor)
}

func TestDecode_Empty(t *testing.T) {
	f, err := graphfile.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, schedule.DefaultDivisor, f.Divisor())

	g, err := f.Graph()
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestFile_GraphStrictAndLoops(t *testing.T) {
	f, err := graphfile.Decode(strings.NewReader("vertices: [0, 1]\nedges:\n  - [0, 5]\nstrict: true\n"))
	require.NoError(t, err)
	_, err = f.Graph()
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	f, err = graphfile.Decode(strings.NewReader("edges:\n  - [3, 3]\n"))
	require.NoError(t, err)
	_, err = f.Graph()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestEncode_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(builder.Wheel(5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, graphfile.FromGraph(g, 4)))

	f, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Divisor())
	back, err := f.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.Vertices(), back.Vertices())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = graphfile.NewLoader("", nil)
	assert.ErrorIs(t, err, graphfile.ErrEmptyPath)
}

func TestLoader_Reload(t *testing.T) {
	path := writeFile(t, t.TempDir(), fixtureYAML)
	logger, _ := logtest.NewNullLogger()

	l, err := graphfile.NewLoader(path, logger)
	require.NoError(t, err)
	assert.Len(t, l.File().Edges, 12)

	var calls int32
	l.OnChange(func(f *graphfile.File) { atomic.AddInt32(&calls, 1) })

	require.NoError(t, os.WriteFile(path, []byte("edges:\n  - [0, 1]\n  - [1, 2]\n  - [2, 0]\n"), 0o600))
	f, err := l.Reload()
	require.NoError(t, err)
	assert.Len(t, f.Edges, 3)
	assert.Same(t, f, l.File())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// A broken file keeps the previous graph.
	require.NoError(t, os.WriteFile(path, []byte("edges: [[0]]\n"), 0o600))
	_, err = l.Reload()
	assert.ErrorIs(t, err, graphfile.ErrMalformedEdge)
	assert.Same(t, f, l.File())
}

func TestLoader_Watch(t *testing.T) {
	path := writeFile(t, t.TempDir(), fixtureYAML)
	logger, _ := logtest.NewNullLogger()

	l, err := graphfile.NewLoader(path, logger)
	require.NoError(t, err)

	var latest atomic.Int32
	l.OnChange(func(f *graphfile.File) { latest.Store(int32(len(f.Edges))) })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("edges:\n  - [0, 1]\n  - [1, 2]\n  - [2, 0]\n"), 0o600))
	assert.Eventually(t, func() bool { return latest.Load() == 3 }, 5*time.Second, 20*time.Millisecond)

	stop()
	stop() // idempotent
}
