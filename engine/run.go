// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvpar/matrix"
	"github.com/katalvlaran/lvpar/segment"
	"github.com/katalvlaran/lvpar/worker"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// task pairs an immutable worker plan with the private buffer it writes
// under CopyThenMerge (nil under SharedInPlace).
type task struct {
	plan    worker.Plan
	private *matrix.Dense
}

// run is every worker plan of one execution plus the master matrix.
// It exists from planning until the join; Execute hands out only the matrix.
type run struct {
	id       uuid.UUID
	strategy Strategy
	master   *matrix.Dense
	tasks    []task
}

// newRun allocates the master matrix and builds one plan per segment.
// No goroutine exists yet; every view is cut before any worker can start.
func newRun(id uuid.UUID, p Params, strategy Strategy, segs []segment.Segment, opts []matrix.Option) (*run, error) {
	master, err := matrix.NewDense(p.Rows, p.Cols, opts...)
	if err != nil {
		return nil, err
	}
	r := &run{id: id, strategy: strategy, master: master, tasks: make([]task, len(segs))}

	switch strategy {
	case SharedInPlace:
		views, err := master.SplitColumns(segs)
		if err != nil {
			_ = master.Close()
			return nil, err
		}
		for i, v := range views {
			if r.tasks[i].plan, err = worker.NewPlan(i, segs[i], p.Iterations, v); err != nil {
				_ = master.Close()
				return nil, err
			}
		}
	case CopyThenMerge:
		if err = segment.Validate(segs, p.Cols); err != nil {
			_ = master.Close()
			return nil, err
		}
		for i, s := range segs {
			priv, err := master.CopyColumns(s)
			if err != nil {
				_ = master.Close()
				return nil, err
			}
			r.tasks[i].private = priv
			if r.tasks[i].plan, err = worker.NewPlan(i, s, p.Iterations, priv.FullView()); err != nil {
				_ = master.Close()
				return nil, err
			}
		}
	default:
		_ = master.Close()
		return nil, fmt.Errorf("%s: %w", strategy, ErrUnknownStrategy)
	}

	return r, nil
}

// awaitAll starts one goroutine per task and blocks until every one has returned.
// A panicking worker is reported as *WorkerFailedError; the others still run
// to completion because nothing cancels them.
func (r *run) awaitAll(log logrus.FieldLogger, hook TaskHook, onStarted func()) error {
	var g errgroup.Group
	for i := range r.tasks {
		t := &r.tasks[i]
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = &WorkerFailedError{
						Index:   t.plan.Index(),
						Segment: t.plan.Segment(),
						Cause:   panicCause(rec),
					}
				}
			}()
			if hook != nil {
				hook(t.plan.Index(), t.plan.Segment())
			}
			worker.Run(t.plan)

			return nil
		})
		log.WithFields(logrus.Fields{
			"worker":  i,
			"segment": t.plan.Segment().String(),
		}).Debug("worker started")
	}
	onStarted()

	return g.Wait()
}

// merge writes every private segment back into the master at its column offset.
// Offsets are disjoint, so order does not matter; plan order is used.
func (r *run) merge() error {
	for _, t := range r.tasks {
		if t.private == nil {
			continue
		}
		if err := r.master.WriteColumns(t.plan.Segment(), t.private); err != nil {
			return err
		}
	}

	return nil
}
