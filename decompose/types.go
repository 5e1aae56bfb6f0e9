// SPDX-License-Identifier: MIT

package decompose

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycledecomp/core"
	"github.com/katalvlaran/cycledecomp/dfs"
	"github.com/katalvlaran/cycledecomp/schedule"
)

var (
	// ErrGraphNil is returned by New when the input graph is nil.
	ErrGraphNil = errors.New("decompose: graph is nil")

	// ErrDone is returned by Step once the length queue is exhausted.
	ErrDone = errors.New("decompose: no scheduled lengths left")

	// ErrIncomplete is returned by Run under WithRequireFullCover when edges
	// remain after the last scheduled length.
	ErrIncomplete = errors.New("decompose: decomposition left edges uncovered")
)

// State is the position of a Decomposer in its loop.
type State int

const (
	StateScheduled State = iota // queue non-empty, next length not yet taken
	StateSearching              // FindCycle running for the current length
	StateFound                  // a cycle was returned
	StateNotFound               // no cycle of the current length exists
	StateRemoving               // stripping the found cycle's edges
	StateDone                   // queue empty; terminal
)

var stateNames = [...]string{"scheduled", "searching", "found", "not-found", "removing", "done"}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Cycle is one discovered cycle. Index counts found cycles from 0.
type Cycle struct {
	Index  int
	Length int
	Path   dfs.Path
}

// Outcome describes a single Step.
type Outcome struct {
	// Length is the target length taken from the queue.
	Length int

	// Found reports whether a cycle was found and removed.
	Found bool

	// Cycle is set when Found is true.
	Cycle Cycle

	// StepLimited reports a miss caused by the dfs step budget rather than
	// an exhaustive search.
	StepLimited bool
}

// Result summarizes a decomposition.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Sizes is the full schedule, in queue order.
	Sizes []int

	// Cycles holds the found cycles in discovery order.
	Cycles []Cycle

	// Skipped holds the scheduled lengths for which no cycle was found.
	Skipped []int

	// Remaining lists the edges of the working graph not covered by any cycle.
	Remaining []core.Edge

	TotalEdges   int
	CoveredEdges int
}

// Complete reports whether every edge was assigned to a cycle.
func (r *Result) Complete() bool {
	return r.CoveredEdges == r.TotalEdges
}

// Coverage returns CoveredEdges / TotalEdges, 0 for an empty graph.
func (r *Result) Coverage() float64 {
	if r.TotalEdges == 0 {
		return 0
	}

	return float64(r.CoveredEdges) / float64(r.TotalEdges)
}

// Option configures a Decomposer.
type Option func(*Options)

// Options holds Decomposer parameters. Use the WithX functions rather than
// filling it directly.
type Options struct {
	Ctx              context.Context
	Divisor          int
	StepLimit        int
	RequireFullCover bool
	Logger           logrus.FieldLogger
	Metrics          *Metrics
	OnCycle          func(Cycle) error
}

// DefaultOptions returns background context, schedule.DefaultDivisor, no step
// limit, the logrus standard logger and unregistered metrics.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Divisor: schedule.DefaultDivisor,
		Logger:  logrus.StandardLogger(),
	}
}

// WithContext sets the context forwarded to every search. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDivisor sets the scheduler divisor (see schedule.WithDivisor).
func WithDivisor(d int) Option {
	return func(o *Options) { o.Divisor = d }
}

// WithStepLimit bounds each search (see dfs.WithStepLimit). A search that
// hits the limit counts as a miss for its length.
func WithStepLimit(n int) Option {
	return func(o *Options) { o.StepLimit = n }
}

// WithRequireFullCover makes Run return ErrIncomplete when edges remain.
func WithRequireFullCover() Option {
	return func(o *Options) { o.RequireFullCover = true }
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the collectors updated by the Decomposer.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithOnCycle installs a callback invoked with each cycle right after its
// edges are removed. A returned error aborts the run.
func WithOnCycle(fn func(Cycle) error) Option {
	return func(o *Options) { o.OnCycle = fn }
}
