// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"strings"
)

// MaxWorkers bounds the worker count of a single run.
const MaxWorkers = 128

// Strategy selects how worker mutations reach the master matrix.
type Strategy int

const (
	// SharedInPlace hands each worker a window into the master buffer; no merge step.
	SharedInPlace Strategy = iota

	// CopyThenMerge hands each worker a private copy of its columns and writes
	// every copy back after the join.
	CopyThenMerge
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case SharedInPlace:
		return "shared-in-place"
	case CopyThenMerge:
		return "copy-then-merge"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts the canonical names and the short forms "shared" and "copy".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shared", "shared-in-place", "":
		return SharedInPlace, nil
	case "copy", "copy-then-merge", "merge":
		return CopyThenMerge, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// State is a run lifecycle stage.
type State int

// Lifecycle stages in transition order; Failed is terminal like Done.
const (
	Idle State = iota
	Planning
	Spawned
	Joining
	Done
	Failed
)

// stateNames is indexed by State.
var stateNames = [...]string{"idle", "planning", "spawned", "joining", "done", "failed"}

// String returns the lower-case stage name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Params are the invocation parameters of one run.
type Params struct {
	Iterations int // total iterations; each cell ends at Iterations−1
	Rows       int // matrix rows
	Cols       int // matrix columns
	Workers    int // worker count, 1..MaxWorkers
}

// Validate reports ErrInvalidPartition for any value below 1 or Workers above MaxWorkers.
func (p Params) Validate() error {
	switch {
	case p.Workers < 1 || p.Workers > MaxWorkers:
		return fmt.Errorf("workers=%d not in [1,%d]: %w", p.Workers, MaxWorkers, ErrInvalidPartition)
	case p.Rows < 1 || p.Cols < 1:
		return fmt.Errorf("shape %dx%d: %w", p.Rows, p.Cols, ErrInvalidPartition)
	case p.Iterations < 1:
		return fmt.Errorf("iterations=%d: %w", p.Iterations, ErrInvalidPartition)
	}

	return nil
}
