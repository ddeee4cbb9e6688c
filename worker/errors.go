// SPDX-License-Identifier: MIT

package worker

import "errors"

var (
	// ErrInvalidIterations indicates an iteration count below 1.
	ErrInvalidIterations = errors.New("worker: iterations must be >= 1")

	// ErrViewMismatch indicates a missing view or one whose columns differ from the segment width.
	ErrViewMismatch = errors.New("worker: view does not match segment")
)
