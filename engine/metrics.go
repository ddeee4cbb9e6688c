// SPDX-License-Identifier: MIT

package engine

// Metric names emitted on the configured tally scope, tagged with the strategy.
const (
	MetricRunsStarted    = "runs_started"
	MetricRunsCompleted  = "runs_completed"
	MetricRunsFailed     = "runs_failed"
	MetricWorkersSpawned = "workers_spawned"
	MetricWorkersFailed  = "workers_failed"
	MetricRunLatency     = "run_latency"

	tagStrategy = "strategy"
)
