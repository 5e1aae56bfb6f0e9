// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycledecomp/decompose"
	"github.com/katalvlaran/cycledecomp/schedule"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestRoot_GenerateFixture(t *testing.T) {
	out, _, err := execute(t, "-g", "fixture")
	require.NoError(t, err)

	assert.Contains(t, out, "adjacency:\n0: [1 2]\n1: [0 2 3 4]\n")
	assert.Contains(t, out, "queue: [4 4 4]\n")
	assert.Contains(t, out, "cycle 0 (L=4): 0 → 1 → 3 → 2 → 0\n")
	assert.Contains(t, out, "cycle 1 (L=4): 1 → 2 → 5 → 4 → 1\n")
	assert.Contains(t, out, "cycle 2 (L=4): 3 → 4 → 6 → 5 → 3\n")
	assert.Contains(t, out, "covered 12/12 edges (100.0%), skipped [], remaining []\n")
}

func TestRoot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.yaml")
	body := "vertices: [0, 1, 2, 3]\nedges:\n  - [0, 1]\n  - [1, 2]\n  - [2, 3]\n  - [3, 0]\nschedule:\n  divisor: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, _, err := execute(t, "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "queue: [4]\n")
	assert.Contains(t, out, "cycle 0 (L=4): 0 → 1 → 2 → 3 → 0\n")

	// --divisor overrides the file: m = 4/2 = 2, no 2-cycles in a simple square.
	out, _, err = execute(t, "-f", path, "--divisor", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "queue: [2 2]\n")
	assert.Contains(t, out, "skipped [2 2]")
}

func TestRoot_Strict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: [0, 1, 2]\nedges:\n  - [0, 1]\n  - [1, 2]\n  - [2, 9]\n"), 0o600))

	_, _, err := execute(t, "-f", path, "--strict")
	assert.Error(t, err)
}

func TestRoot_TooFewEdges(t *testing.T) {
	_, stderr, err := execute(t, "-g", "path:3")
	assert.ErrorIs(t, err, schedule.ErrMinCycleSizeZero)
	assert.Contains(t, stderr, "minimum cycle size is zero")
}

func TestRoot_RequireFull(t *testing.T) {
	out, _, err := execute(t, "-g", "petersen", "--require-full")
	assert.ErrorIs(t, err, decompose.ErrIncomplete)
	assert.Contains(t, out, "covered 10/15 edges")
}

func TestRoot_NoInput(t *testing.T) {
	_, _, err := execute(t)
	assert.ErrorIs(t, err, errNoInput)

	_, _, err = execute(t, "-g", "fixture", "-f", "x.yaml")
	assert.Error(t, err)
}

func TestRoot_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycledecomp.prom")

	_, _, err := execute(t, "-g", "complete:7", "--metrics-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cycledecomp_cycles_found_total 3")
	assert.Contains(t, string(data), `cycledecomp_searches_total{outcome="found"} 3`)
}

func TestRoot_WatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edges:\n  - [0, 1]\n  - [1, 2]\n  - [2, 0]\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"-f", path, "--watch"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}
