// SPDX-License-Identifier: MIT

// Package decompose splits an undirected graph into edge-disjoint cycles.
//
// A Decomposer clones the caller's graph, asks the schedule package for a
// FIFO of target cycle lengths derived from the edge count, and then works
// through the queue one entry at a time:
//
//	Scheduled ─► Searching ─┬─► Found ─► Removing ─► Scheduled
//	                        └─► NotFound ──────────► Scheduled
//	Scheduled (queue empty) ─► Done
//
// Each entry is attempted exactly once with dfs.FindCycle against the
// current working graph. A found cycle's edges are removed before the next
// search; a miss leaves the working graph untouched and the length is
// recorded in Result.Skipped. There is no retry at another length, so a run
// may end with edges left over: Result.Remaining and Result.Complete make
// that visible, and WithRequireFullCover turns it into ErrIncomplete.
//
// The caller's graph is never mutated. A Decomposer is not safe for
// concurrent use.
//
// Observability:
//
//   - Logging through a logrus.FieldLogger (WithLogger); every entry carries
//     the run's UUID as run_id.
//   - Prometheus counters, a gauge and a histogram (NewMetrics, WithMetrics).
//   - Streaming of each cycle as it is found (WithOnCycle).
package decompose
