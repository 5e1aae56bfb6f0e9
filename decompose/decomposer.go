// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycledecomp/core"
	"github.com/katalvlaran/cycledecomp/dfs"
	"github.com/katalvlaran/cycledecomp/queue"
	"github.com/katalvlaran/cycledecomp/schedule"
)

// Decomposer owns a working copy of a graph and the queue of target lengths.
type Decomposer struct {
	opts    Options
	log     logrus.FieldLogger
	metrics *Metrics

	work    *core.Graph
	pending *queue.Queue[int]
	state   State
	result  Result
}

// New clones g and schedules target lengths from its edge count.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - schedule.ErrMinCycleSizeZero when the graph has too few edges for the
//     divisor, schedule.ErrBadDivisor for a divisor below 1.
func New(g *core.Graph, opts ...Option) (*Decomposer, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Metrics == nil {
		o.Metrics = NewMetrics(nil)
	}

	work := g.Clone()
	sizes, err := schedule.Sizes(work.EdgeCount(), schedule.WithDivisor(o.Divisor))
	if err != nil {
		return nil, fmt.Errorf("decompose: New: %w", err)
	}

	runID := uuid.NewString()
	d := &Decomposer{
		opts:    o,
		log:     o.Logger.WithField("run_id", runID),
		metrics: o.Metrics,
		work:    work,
		pending: sizes,
		state:   StateScheduled,
		result: Result{
			RunID:      runID,
			Sizes:      sizes.Items(),
			TotalEdges: work.EdgeCount(),
		},
	}
	d.metrics.EdgesRemaining.Set(float64(work.EdgeCount()))
	d.log.WithFields(logrus.Fields{
		"vertices": work.VertexCount(),
		"edges":    work.EdgeCount(),
		"sizes":    d.result.Sizes,
	}).Debug("decomposition scheduled")

	return d, nil
}

// Decompose is New followed by Run.
func Decompose(g *core.Graph, opts ...Option) (*Result, error) {
	d, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	return d.Run()
}

// State returns the current loop state.
func (d *Decomposer) State() State { return d.state }

// Pending returns the lengths still queued, front first.
func (d *Decomposer) Pending() []int { return d.pending.Items() }

// Working returns a copy of the current working graph.
func (d *Decomposer) Working() *core.Graph { return d.work.Clone() }

// Step takes the next length from the queue, searches the working graph for
// a cycle of that length and, if one is found, removes its edges.
//
// A miss is not an error: the Outcome has Found == false. Step returns
// ErrDone once the queue is empty; search errors (cancellation, hook
// failures) and OnCycle errors end the run and are returned wrapped.
func (d *Decomposer) Step() (Outcome, error) {
	length, ok := d.pending.Dequeue()
	if !ok {
		d.state = StateDone
		return Outcome{}, ErrDone
	}
	out := Outcome{Length: length}
	log := d.log.WithField("length", length)

	d.state = StateSearching
	began := time.Now()
	path, err := dfs.FindCycle(d.work, length,
		dfs.WithContext(d.opts.Ctx),
		dfs.WithStepLimit(d.opts.StepLimit),
	)
	d.metrics.SearchDuration.Observe(time.Since(began).Seconds())

	switch {
	case errors.Is(err, dfs.ErrStepLimit):
		out.StepLimited = true
		d.metrics.Searches.WithLabelValues(outcomeStepLimit).Inc()
		log.WithError(err).Warn("search abandoned")
		d.miss(length)

	case err != nil:
		d.metrics.Searches.WithLabelValues(outcomeError).Inc()
		d.state = StateDone

		return out, fmt.Errorf("decompose: Step(L=%d): %w", length, err)

	case len(path) == 0:
		d.metrics.Searches.WithLabelValues(outcomeNotFound).Inc()
		log.Info("no cycle of requested length")
		d.miss(length)

	default:
		d.metrics.Searches.WithLabelValues(outcomeFound).Inc()
		d.state = StateFound
		out.Found = true
		out.Cycle = Cycle{Index: len(d.result.Cycles), Length: length, Path: path}
		d.remove(path)
		d.result.Cycles = append(d.result.Cycles, out.Cycle)
		log.WithField("cycle", path.String()).Debug("cycle found")

		if d.opts.OnCycle != nil {
			if err := d.opts.OnCycle(out.Cycle); err != nil {
				d.state = StateDone
				return out, fmt.Errorf("decompose: OnCycle(#%d): %w", out.Cycle.Index, err)
			}
		}
	}

	d.metrics.EdgesRemaining.Set(float64(d.work.EdgeCount()))
	if d.pending.IsEmpty() {
		d.state = StateDone
	} else {
		d.state = StateScheduled
	}

	return out, nil
}

// miss records a length for which no cycle was found.
func (d *Decomposer) miss(length int) {
	d.state = StateNotFound
	d.result.Skipped = append(d.result.Skipped, length)
}

// remove strips every step of path from the working graph.
func (d *Decomposer) remove(path dfs.Path) {
	d.state = StateRemoving
	removed := 0
	for _, e := range path {
		if d.work.RemoveEdge(e.From, e.To) {
			removed++
		}
	}
	d.metrics.CyclesFound.Inc()
	d.metrics.EdgesRemoved.Add(float64(removed))
}

// Run steps until the queue is empty and returns the summary. On a step
// error it returns the partial summary together with the error.
func (d *Decomposer) Run() (*Result, error) {
	for {
		_, err := d.Step()
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			return d.Result(), err
		}
	}

	res := d.Result()
	d.log.WithFields(logrus.Fields{
		"cycles":    len(res.Cycles),
		"skipped":   res.Skipped,
		"covered":   res.CoveredEdges,
		"total":     res.TotalEdges,
		"remaining": len(res.Remaining),
	}).Info("decomposition finished")

	if d.opts.RequireFullCover && !res.Complete() {
		return res, fmt.Errorf("decompose: %d of %d edges uncovered: %w",
			res.TotalEdges-res.CoveredEdges, res.TotalEdges, ErrIncomplete)
	}

	return res, nil
}

// Result returns a snapshot of the progress so far.
func (d *Decomposer) Result() *Result {
	res := d.result
	res.Sizes = append([]int(nil), d.result.Sizes...)
	res.Cycles = append([]Cycle(nil), d.result.Cycles...)
	res.Skipped = append([]int(nil), d.result.Skipped...)
	res.Remaining = d.work.Edges()
	res.CoveredEdges = res.TotalEdges - d.work.EdgeCount()

	return &res
}
