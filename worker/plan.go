// SPDX-License-Identifier: MIT

package worker

import (
	"fmt"

	"github.com/katalvlaran/lvpar/matrix"
	"github.com/katalvlaran/lvpar/segment"
)

// Plan is the immutable assignment of one worker.
// Fields are unexported so a Plan cannot be retargeted after NewPlan.
type Plan struct {
	index      int                // worker index in plan order
	seg        segment.Segment    // master column range
	iterations int                // total iteration count of the run
	view       *matrix.ColumnView // the only region this worker may touch
}

// NewPlan validates and binds a worker assignment.
//
// The view may be a window into the master matrix (shared-in-place) or a
// full view over a private copy (copy-then-merge); in both cases its width
// must equal seg.Len().
//
// Errors:
//   - ErrInvalidIterations when iterations < 1.
//   - ErrViewMismatch for a nil view or a width different from the segment.
func NewPlan(index int, seg segment.Segment, iterations int, view *matrix.ColumnView) (Plan, error) {
	if iterations < 1 {
		return Plan{}, fmt.Errorf("NewPlan(%d): %d: %w", index, iterations, ErrInvalidIterations)
	}
	if view == nil || view.Cols() != seg.Len() {
		return Plan{}, fmt.Errorf("NewPlan(%d): segment %s: %w", index, seg, ErrViewMismatch)
	}

	return Plan{index: index, seg: seg, iterations: iterations, view: view}, nil
}

// Index returns the worker index.
func (p Plan) Index() int { return p.index }

// Segment returns the master column range.
func (p Plan) Segment() segment.Segment { return p.seg }

// Iterations returns the run iteration count.
func (p Plan) Iterations() int { return p.iterations }

// View returns the assigned window.
func (p Plan) View() *matrix.ColumnView { return p.view }

// Rounds is the number of increments Run applies: iterations−1.
func (p Plan) Rounds() int { return p.iterations - 1 }
