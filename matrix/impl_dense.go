// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy strided windows (ColumnView) that mutate the base buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxView  = "View"  // ctor tag for Dense.View
	ctxClose = "Close" // method tag for Dense.Close
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - release unmaps the buffer when it came from a shared mapping; nil for heap storage.
type Dense struct {
	r, c           int          // row and column counts
	data           []float64    // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
	release        func() error // unmaps shared storage; nil when heap-backed
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the resolved policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer, on the heap or in a shared mapping.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation, nothing allocated).
//   - ErrSharedMappingUnsupported, or a wrapped mmap error, under WithSharedMapping.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	m := &Dense{r: rows, c: cols, validateNaNInf: o.validateNaNInf}
	if !o.sharedMapping {
		m.data = make([]float64, rows*cols) // make() zero-fills deterministically
		return m, nil
	}

	data, release, err := allocShared(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}
	m.data, m.release = data, release

	return m, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used for private copies of empty column segments.
func newDenseZeroOK(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Shared reports whether the buffer lives in a shared memory mapping.
func (m *Dense) Shared() bool { return m.release != nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf when v is not finite and the numeric policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep, heap-backed copy; the numeric policy is preserved.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Equal reports whether o has the same shape and bit-identical elements.
// NaN payloads compare by bits, so two runs that agree bit-for-bit are Equal.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if math.Float64bits(m.data[i]) != math.Float64bits(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths; large matrices produce large strings.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight strided window referencing the base buffer.
//
// Behavior highlights:
//   - Writes via the view reflect in the base; numeric policy is inherited.
//   - Zero-area windows (rows==0 or cols==0) are legal.
//
// Errors:
//   - ErrBadShape when the window does not fit.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*ColumnView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &ColumnView{
		data:           m.data,
		offset:         r0*m.c + c0,
		stride:         m.c,
		rows:           rows,
		cols:           cols,
		col0:           c0,
		validateNaNInf: m.validateNaNInf,
	}, nil
}

// Close releases a shared mapping. It is a no-op for heap storage and safe
// to call more than once. Views cut from m must not be used after Close.
func (m *Dense) Close() error {
	if m.release == nil {
		return nil
	}
	release := m.release
	m.release = nil
	m.data = nil
	m.r, m.c = 0, 0
	if err := release(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxClose, err)
	}

	return nil
}
