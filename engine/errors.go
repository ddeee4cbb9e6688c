// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpar/segment"
)

var (
	// ErrInvalidPartition is the planner sentinel, re-exported so callers
	// of this package need not import segment.
	ErrInvalidPartition = segment.ErrInvalidPartition

	// ErrWorkerFailed matches any *WorkerFailedError via errors.Is.
	ErrWorkerFailed = errors.New("engine: worker failed")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("engine: unknown strategy")
)

// WorkerFailedError identifies the worker and segment of a failed run.
type WorkerFailedError struct {
	Index   int             // worker index in plan order
	Segment segment.Segment // master column range the worker owned
	Cause   error           // recovered panic value
}

// Error implements error.
func (e *WorkerFailedError) Error() string {
	return fmt.Sprintf("engine: worker %d on columns %s failed: %v", e.Index, e.Segment, e.Cause)
}

// Is reports ErrWorkerFailed as a match.
func (e *WorkerFailedError) Is(target error) bool { return target == ErrWorkerFailed }

// Unwrap exposes the recovered cause.
func (e *WorkerFailedError) Unwrap() error { return e.Cause }

// panicCause turns a recovered value into an error, keeping error values wrappable.
func panicCause(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}

	return fmt.Errorf("panic: %v", rec)
}
