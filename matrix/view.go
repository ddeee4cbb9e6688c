// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpar/segment"
)

// ColumnView is a non-owning strided window into a Dense (shared storage).
// Element (i, j) of the view lives at data[offset + i*stride + j].
// It does not implement Matrix on purpose: a view cannot be cloned into an
// independent lifetime, only copied out with Dense.CopyColumns.
type ColumnView struct {
	data           []float64 // base buffer (not owned)
	offset         int       // flat offset of element (0,0)
	stride         int       // distance between consecutive rows
	rows           int       // view height
	cols           int       // view width
	col0           int       // first base column covered by the view
	validateNaNInf bool      // inherited numeric policy
}

// Rows returns the number of rows in the view.
func (v *ColumnView) Rows() int { return v.rows }

// Cols returns the number of columns in the view.
func (v *ColumnView) Cols() int { return v.cols }

// Offset returns the flat base offset of element (0,0).
func (v *ColumnView) Offset() int { return v.offset }

// Stride returns the row stride of the base buffer.
func (v *ColumnView) Stride() int { return v.stride }

// Columns returns the base column range covered by the view.
func (v *ColumnView) Columns() segment.Segment {
	return segment.Segment{Start: v.col0, End: v.col0 + v.cols}
}

// At reads element (i,j) of the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *ColumnView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return 0, fmt.Errorf("ColumnView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[v.offset+i*v.stride+j], nil
}

// Set writes element (i,j) of the view through to the base buffer.
// Errors:
//   - ErrOutOfRange for indices outside the view.
//   - ErrNaNInf for a non-finite value under the numeric policy.
func (v *ColumnView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return fmt.Errorf("ColumnView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.validateNaNInf && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return fmt.Errorf("ColumnView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.data[v.offset+i*v.stride+j] = val

	return nil
}

// AddScalar adds delta to every element of the view, in place.
// MAIN DESCRIPTION:
//   - Row by row, one contiguous run of Cols() elements per row.
//
// Behavior highlights:
//   - Only addresses inside the window are touched: each row is resliced
//     with a capped full-slice expression before the inner loop.
//   - An empty view is a no-op.
//
// Errors:
//   - ErrNaNInf when delta is not finite and the numeric policy is on.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func (v *ColumnView) AddScalar(delta float64) error {
	if v.validateNaNInf && (math.IsNaN(delta) || math.IsInf(delta, 0)) {
		return fmt.Errorf("ColumnView.AddScalar(%g): %w", delta, ErrNaNInf)
	}
	if v.cols == 0 {
		return nil
	}

	var i, j, lo int
	for i = 0; i < v.rows; i++ {
		lo = v.offset + i*v.stride
		row := v.data[lo : lo+v.cols : lo+v.cols]
		for j = range row {
			row[j] += delta
		}
	}

	return nil
}
