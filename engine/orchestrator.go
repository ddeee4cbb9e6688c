// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvpar/matrix"
	"github.com/katalvlaran/lvpar/segment"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
)

// Orchestrator runs partitioned update jobs. It holds configuration only,
// so one Orchestrator may execute several runs concurrently.
type Orchestrator struct {
	strategy   Strategy
	matrixOpts []matrix.Option
	logger     logrus.FieldLogger
	scope      tally.Scope
	onState    StateHook
	onTask     TaskHook
}

// New builds an Orchestrator with SharedInPlace, heap storage, a discarding
// logger and a no-op metrics scope unless overridden.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		strategy: SharedInPlace,
		logger:   discardLogger(),
		scope:    tally.NoopScope,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// Strategy returns the configured strategy.
func (o *Orchestrator) Strategy() Strategy { return o.strategy }

// Execute is a shortcut for New(opts...).Execute(p).
func Execute(p Params, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Execute(p)
}

// Execute performs one run and returns the finished matrix, in which every
// cell equals p.Iterations−1.
// MAIN DESCRIPTION:
//   - Planning: validate p, plan segments. Nothing is allocated on failure.
//   - Spawned: allocate the matrix, cut all views (or private copies), then
//     start one goroutine per segment.
//   - Joining: wait for every worker.
//   - Done: merge private copies under CopyThenMerge; return the matrix.
//
// Errors:
//   - ErrInvalidPartition for invalid parameters.
//   - *WorkerFailedError (errors.Is ErrWorkerFailed) when a worker panicked.
//     The matrix is discarded (and unmapped when shared); no partial result.
//
// Complexity:
//   - Time O(iterations*rows*cols / workers) wall clock on enough cores.
func (o *Orchestrator) Execute(p Params) (*matrix.Dense, error) {
	id := uuid.New()
	scope := o.scope.Tagged(map[string]string{tagStrategy: o.strategy.String()})
	log := o.logger.WithFields(logrus.Fields{
		"run_id":   id.String(),
		"strategy": o.strategy.String(),
	})
	scope.Counter(MetricRunsStarted).Inc(1)
	sw := scope.Timer(MetricRunLatency).Start()
	defer sw.Stop()

	fail := func(err error) (*matrix.Dense, error) {
		o.transition(id, Failed)
		scope.Counter(MetricRunsFailed).Inc(1)
		log.WithError(err).Error("run failed")

		return nil, err
	}

	o.transition(id, Planning)
	if err := p.Validate(); err != nil {
		return fail(fmt.Errorf("engine.Execute: %w", err))
	}
	segs, err := segment.Plan(p.Cols, p.Workers)
	if err != nil {
		return fail(fmt.Errorf("engine.Execute: %w", err))
	}

	r, err := newRun(id, p, o.strategy, segs, o.matrixOpts)
	if err != nil {
		return fail(fmt.Errorf("engine.Execute: %w", err))
	}
	log.WithFields(logrus.Fields{
		"rows":       p.Rows,
		"cols":       p.Cols,
		"workers":    p.Workers,
		"iterations": p.Iterations,
		"shared":     r.master.Shared(),
	}).Info("run planned")

	o.transition(id, Spawned)
	scope.Counter(MetricWorkersSpawned).Inc(int64(len(r.tasks)))
	err = r.awaitAll(log, o.onTask, func() { o.transition(id, Joining) })
	if err != nil {
		var wf *WorkerFailedError
		if errors.As(err, &wf) {
			scope.Counter(MetricWorkersFailed).Inc(1)
		}
		_ = r.master.Close()
		return fail(fmt.Errorf("engine.Execute: %w", err))
	}

	if err = r.merge(); err != nil {
		_ = r.master.Close()
		return fail(fmt.Errorf("engine.Execute: merge: %w", err))
	}

	o.transition(id, Done)
	scope.Counter(MetricRunsCompleted).Inc(1)
	log.Info("run done")

	return r.master, nil
}

func (o *Orchestrator) transition(id uuid.UUID, s State) {
	if o.onState != nil {
		o.onState(id, s)
	}
}
