// SPDX-License-Identifier: MIT

// Package schedule decides how many cycles to look for, and of what length,
// given a graph's edge count.
//
// Policy: with E edges and divisor d (default 3) the minimum cycle size is
// m = E / d (integer division). The scheduler enqueues m while at least m
// edges remain unallocated, then enqueues the non-zero remainder:
//
//	E=12, d=3 ⇒ m=4 ⇒ [4 4 4]
//	E=14, d=3 ⇒ m=4 ⇒ [4 4 4 2]
//
// The lengths always sum to E, there are ceil(E/m) of them, and at most the
// last one is shorter than m. m == 0 is a configuration error.
package schedule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycledecomp/queue"
)

// DefaultDivisor is the divisor used when no WithDivisor option is given.
const DefaultDivisor = 3

var (
	// ErrMinCycleSizeZero indicates the edge count is too small for the
	// divisor: E / d == 0.
	ErrMinCycleSizeZero = errors.New("schedule: minimum cycle size is zero")

	// ErrBadDivisor indicates a divisor below 1.
	ErrBadDivisor = errors.New("schedule: divisor must be at least 1")
)

// Options holds scheduler parameters.
type Options struct {
	Divisor int
}

// Option configures Sizes.
type Option func(*Options)

// WithDivisor sets the edge-count divisor. Values < 1 are reported by Sizes
// as ErrBadDivisor.
func WithDivisor(d int) Option {
	return func(o *Options) { o.Divisor = d }
}

// DefaultOptions returns Options{Divisor: DefaultDivisor}.
func DefaultOptions() Options {
	return Options{Divisor: DefaultDivisor}
}

// MinCycleSize returns edgeCount / divisor, or an error when the divisor is
// invalid or the result is not positive.
func MinCycleSize(edgeCount, divisor int) (int, error) {
	if divisor < 1 {
		return 0, fmt.Errorf("schedule: divisor %d: %w", divisor, ErrBadDivisor)
	}
	m := edgeCount / divisor
	if m <= 0 {
		return 0, fmt.Errorf("schedule: %d edges / divisor %d: %w", edgeCount, divisor, ErrMinCycleSizeZero)
	}

	return m, nil
}

// Sizes returns a FIFO of target cycle lengths for a graph with edgeCount
// edges.
//
// Complexity: O(E / m) = O(d).
func Sizes(edgeCount int, opts ...Option) (*queue.Queue[int], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := MinCycleSize(edgeCount, o.Divisor)
	if err != nil {
		return nil, err
	}

	q := &queue.Queue[int]{}
	remaining := edgeCount
	for remaining >= m {
		q.Enqueue(m)
		remaining -= m
	}
	if remaining > 0 {
		q.Enqueue(remaining)
	}

	return q, nil
}
