// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrInvalidLength is returned for a target cycle length below 1.
	ErrInvalidLength = errors.New("dfs: cycle length must be at least 1")

	// ErrStepLimit is returned when the search expands more vertices than
	// allowed by WithStepLimit.
	ErrStepLimit = errors.New("dfs: step limit exceeded")

	// ErrInvalidPath is returned by Path.Verify when a path is not a simple
	// closed cycle of the expected length in the graph.
	ErrInvalidPath = errors.New("dfs: invalid cycle path")
)

// Option configures FindCycle.
type Option func(*Options)

// Options holds FindCycle parameters.
type Options struct {
	// Ctx is checked before every expansion; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is called each time a vertex is pushed, with its
	// depth (number of edges from the start). The start is reported at
	// depth 0. Returning an error aborts the search with that error.
	OnVisit func(id, depth int) error

	// StepLimit caps the number of expansions per FindCycle call. 0 means
	// no limit.
	StepLimit int
}

// DefaultOptions returns Options with a background context, no hook and no
// step limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked during the search. A nil context is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a hook invoked on every push.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithStepLimit bounds the number of expansions. n <= 0 disables the limit.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.StepLimit = n
	}
}
