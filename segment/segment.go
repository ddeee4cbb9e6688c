// SPDX-License-Identifier: MIT

package segment

import "fmt"

// Plan divides totalColumns columns between workers workers.
// MAIN DESCRIPTION:
//   - base = totalColumns / workers (integer division).
//   - Worker i gets [i*base, (i+1)*base); the last worker gets [i*base, totalColumns).
//
// Behavior highlights:
//   - Pure: the same (totalColumns, workers) always yields the same segments.
//   - Leading segments are empty when totalColumns < workers; that is not an error.
//
// Errors:
//   - ErrInvalidPartition when workers < 1 or totalColumns < 1.
//
// Complexity:
//   - Time O(workers), Space O(workers).
func Plan(totalColumns, workers int) ([]Segment, error) {
	if workers < 1 {
		return nil, fmt.Errorf("Plan(%d,%d): worker count must be >= 1: %w", totalColumns, workers, ErrInvalidPartition)
	}
	if totalColumns < 1 {
		return nil, fmt.Errorf("Plan(%d,%d): column count must be >= 1: %w", totalColumns, workers, ErrInvalidPartition)
	}

	base := totalColumns / workers
	segs := make([]Segment, workers)
	var i int
	for i = 0; i < workers-1; i++ {
		segs[i] = Segment{Start: i * base, End: (i + 1) * base}
	}
	// Last segment absorbs totalColumns mod workers and ends exactly at totalColumns.
	segs[workers-1] = Segment{Start: (workers - 1) * base, End: totalColumns}

	return segs, nil
}

// Validate checks that segs are ordered, contiguous and cover [0, totalColumns) exactly once.
// Contiguity plus the fixed endpoints implies pairwise disjointness.
//
// Errors:
//   - ErrInvalidPartition wrapped with the offending segment index and range.
//
// Complexity:
//   - Time O(len(segs)), Space O(1).
func Validate(segs []Segment, totalColumns int) error {
	if len(segs) == 0 {
		return fmt.Errorf("Validate: no segments: %w", ErrInvalidPartition)
	}
	if totalColumns < 1 {
		return fmt.Errorf("Validate: column count %d: %w", totalColumns, ErrInvalidPartition)
	}

	next := 0 // expected Start of the next segment
	for i, s := range segs {
		if s.Start != next || s.End < s.Start || s.End > totalColumns {
			return fmt.Errorf("Validate: segment %d %s: %w", i, s, ErrInvalidPartition)
		}
		next = s.End
	}
	if next != totalColumns {
		return fmt.Errorf("Validate: segments end at %d, want %d: %w", next, totalColumns, ErrInvalidPartition)
	}

	return nil
}
