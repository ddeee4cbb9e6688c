// SPDX-License-Identifier: MIT

// Package engine orchestrates a partitioned parallel update run.
//
// What:
//
//   - Execute plans column segments, allocates the master matrix, cuts one
//     disjoint view per segment, starts one goroutine per segment, joins them
//     at a single barrier and returns the finished matrix.
//   - Two strategies: SharedInPlace (workers write windows of the master
//     buffer, no merge) and CopyThenMerge (workers mutate private copies that
//     are written back at their column offsets after the join).
//
// State machine:
//
//	Idle → Planning → Spawned → Joining → Done
//	          │                     │
//	          └────── Failed ◄──────┘
//
// Concurrency:
//
//   - The join (errgroup.Group.Wait) is the only synchronization point: all
//     worker writes happen-before the orchestrator reads the matrix.
//   - No locks or atomics guard the data path; the segment planner's
//     disjointness invariant, re-checked by matrix.SplitColumns, is the sole
//     correctness mechanism.
//   - There is no cancellation. A started run completes or the process dies.
//
// Errors:
//
//   - ErrInvalidPartition: bad parameters, reported before any allocation.
//   - ErrWorkerFailed (*WorkerFailedError): a worker panicked; the run is
//     failed as a whole and no matrix is returned.
//
// Observability:
//
//   - logrus fields run_id, strategy, worker, segment.
//   - tally counters runs_started, runs_completed, runs_failed,
//     workers_spawned, workers_failed and timer run_latency.
package engine
