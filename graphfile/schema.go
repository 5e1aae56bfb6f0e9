// SPDX-License-Identifier: MIT

// Package graphfile reads graph definitions from YAML and keeps them fresh
// with fsnotify.
//
// File format:
//
//	vertices: [0, 1, 2, 3]
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//	strict: false        # reject edges with unknown endpoints
//	schedule:
//	  divisor: 3         # scheduler divisor, 0 means the default
package graphfile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycledecomp/core"
	"github.com/katalvlaran/cycledecomp/schedule"
)

var (
	// ErrMalformedEdge indicates an edge entry that is not a pair.
	ErrMalformedEdge = errors.New("graphfile: edge must have exactly two endpoints")

	// ErrEmptyPath indicates a Loader created without a file path.
	ErrEmptyPath = errors.New("graphfile: empty path")
)

// File is the decoded form of a graph file.
type File struct {
	Vertices []int         `yaml:"vertices,flow"`
	Edges    [][]int       `yaml:"edges,flow"`
	Strict   bool          `yaml:"strict"`
	Schedule ScheduleBlock `yaml:"schedule"`
}

// ScheduleBlock carries scheduler settings.
type ScheduleBlock struct {
	Divisor int `yaml:"divisor"`
}

// Validate checks edge arity and the divisor.
func (f *File) Validate() error {
	for i, e := range f.Edges {
		if len(e) != 2 {
			return fmt.Errorf("graphfile: edges[%d] has %d endpoints: %w", i, len(e), ErrMalformedEdge)
		}
	}
	if f.Schedule.Divisor < 0 {
		return fmt.Errorf("graphfile: schedule.divisor %d: %w", f.Schedule.Divisor, schedule.ErrBadDivisor)
	}

	return nil
}

// Divisor returns the scheduler divisor, applying the default for 0.
func (f *File) Divisor() int {
	if f.Schedule.Divisor == 0 {
		return schedule.DefaultDivisor
	}

	return f.Schedule.Divisor
}

// Graph validates f and builds a core.Graph from it.
func (f *File) Graph() (*core.Graph, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	edges := make([]core.Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = core.Edge{From: e[0], To: e[1]}
	}
	var opts []core.GraphOption
	if f.Strict {
		opts = append(opts, core.WithStrictVertices())
	}

	return core.NewGraph(f.Vertices, edges, opts...)
}

// FromGraph captures g as a File: ascending vertices and derived edges.
func FromGraph(g *core.Graph, divisor int) *File {
	f := &File{Vertices: g.Vertices(), Schedule: ScheduleBlock{Divisor: divisor}}
	for _, e := range g.Edges() {
		f.Edges = append(f.Edges, []int{e.From, e.To})
	}

	return f
}
