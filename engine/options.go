// SPDX-License-Identifier: MIT

package engine

import (
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvpar/matrix"
	"github.com/katalvlaran/lvpar/segment"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
)

// StateHook observes every lifecycle transition of a run.
// Called synchronously from the orchestrator goroutine.
type StateHook func(runID uuid.UUID, s State)

// TaskHook is called inside each worker goroutine right before its update loop.
// A panic inside the hook fails that worker like a panic in the loop would.
type TaskHook func(index int, seg segment.Segment)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithStrategy selects SharedInPlace (default) or CopyThenMerge.
func WithStrategy(s Strategy) Option {
	return func(o *Orchestrator) { o.strategy = s }
}

// WithSharedMapping allocates the master matrix in an anonymous shared mapping.
// The caller owns the returned matrix and must Close it.
func WithSharedMapping() Option {
	return func(o *Orchestrator) { o.matrixOpts = append(o.matrixOpts, matrix.WithSharedMapping()) }
}

// WithLogger sets the run logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsScope sets the tally scope. The default is tally.NoopScope.
func WithMetricsScope(s tally.Scope) Option {
	return func(o *Orchestrator) {
		if s != nil {
			o.scope = s
		}
	}
}

// WithStateHook registers a lifecycle observer.
func WithStateHook(h StateHook) Option {
	return func(o *Orchestrator) { o.onState = h }
}

// WithTaskHook registers a per-worker callback run inside the worker goroutine.
func WithTaskHook(h TaskHook) Option {
	return func(o *Orchestrator) { o.onTask = h }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
