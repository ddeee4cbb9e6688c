// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public functions return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested window does not fit inside the matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between a segment and a source matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was passed as an argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSharedMappingUnsupported is returned by NewDense with WithSharedMapping
	// on platforms without anonymous shared mappings.
	ErrSharedMappingUnsupported = errors.New("matrix: shared memory mapping not supported on this platform")
)
