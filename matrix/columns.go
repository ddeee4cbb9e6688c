// SPDX-License-Identifier: MIT

// Package matrix - column-segment windows, private copies and write-back.
//
// SplitColumns is the only place where views for a parallel run are derived.
// It validates the whole segment set first, then cuts every view in one
// sequential pass, so no two returned views share an address.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvpar/segment"
)

const (
	ctxColumns      = "ColumnsView"
	ctxSplit        = "SplitColumns"
	ctxCopyColumns  = "CopyColumns"
	ctxWriteColumns = "WriteColumns"
)

// checkSegment verifies that seg lies inside [0, cols].
func checkSegment(seg segment.Segment, cols int) error {
	if seg.Start < 0 || seg.End < seg.Start || seg.End > cols {
		return ErrBadShape
	}

	return nil
}

// ColumnsView returns a window covering every row of the columns in seg.
// An empty segment yields a legal zero-width view.
//
// Errors:
//   - ErrBadShape when seg does not fit inside [0, Cols()].
func (m *Dense) ColumnsView(seg segment.Segment) (*ColumnView, error) {
	if err := checkSegment(seg, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s%s: %w", ctxColumns, seg, err)
	}

	return m.View(0, seg.Start, m.r, seg.Len())
}

// SplitColumns cuts one view per segment.
// MAIN DESCRIPTION:
//   - Stage 1: segment.Validate proves segs ordered, contiguous and covering [0, Cols()).
//   - Stage 2: cut views sequentially; the result index matches the segment index.
//
// Behavior highlights:
//   - Disjointness is checked, not assumed; a bad set fails before any view exists.
//
// Errors:
//   - segment.ErrInvalidPartition for a set that breaks the cover invariant.
//
// Complexity:
//   - Time O(len(segs)), Space O(len(segs)).
func (m *Dense) SplitColumns(segs []segment.Segment) ([]*ColumnView, error) {
	if err := segment.Validate(segs, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxSplit, err)
	}

	views := make([]*ColumnView, len(segs))
	for i, s := range segs {
		v, err := m.ColumnsView(s)
		if err != nil {
			return nil, fmt.Errorf("Dense.%s: segment %d: %w", ctxSplit, i, err)
		}
		views[i] = v
	}

	return views, nil
}

// CopyColumns materializes the columns in seg into an independent heap-backed Dense
// of shape Rows()×seg.Len(). An empty segment yields a legal Rows()×0 matrix.
//
// Errors:
//   - ErrBadShape when seg does not fit.
//
// Complexity:
//   - Time O(r*len), Space O(r*len).
func (m *Dense) CopyColumns(seg segment.Segment) (*Dense, error) {
	if err := checkSegment(seg, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s%s: %w", ctxCopyColumns, seg, err)
	}
	w := seg.Len()
	out, err := newDenseZeroOK(m.r, w, m.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s%s: %w", ctxCopyColumns, seg, err)
	}

	var i, src int
	for i = 0; i < m.r; i++ {
		src = i*m.c + seg.Start
		copy(out.data[i*w:(i+1)*w], m.data[src:src+w])
	}

	return out, nil
}

// WriteColumns copies src back into the columns of seg.
// src must have Rows() rows and seg.Len() columns.
//
// Errors:
//   - ErrNilMatrix for a nil src.
//   - ErrBadShape when seg does not fit.
//   - ErrDimensionMismatch when src has the wrong shape.
//
// Complexity:
//   - Time O(r*len), Space O(1).
func (m *Dense) WriteColumns(seg segment.Segment, src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.%s%s: %w", ctxWriteColumns, seg, ErrNilMatrix)
	}
	if err := checkSegment(seg, m.c); err != nil {
		return fmt.Errorf("Dense.%s%s: %w", ctxWriteColumns, seg, err)
	}
	w := seg.Len()
	if src.r != m.r || src.c != w {
		return fmt.Errorf("Dense.%s%s: src %dx%d, want %dx%d: %w",
			ctxWriteColumns, seg, src.r, src.c, m.r, w, ErrDimensionMismatch)
	}

	var i, dst int
	for i = 0; i < m.r; i++ {
		dst = i*m.c + seg.Start
		copy(m.data[dst:dst+w], src.data[i*w:(i+1)*w])
	}

	return nil
}

// FullView returns a window over the whole matrix.
// Used to hand a private copy to a worker as an ordinary view.
func (m *Dense) FullView() *ColumnView {
	return &ColumnView{
		data:           m.data,
		stride:         m.c,
		rows:           m.r,
		cols:           m.c,
		validateNaNInf: m.validateNaNInf,
	}
}
