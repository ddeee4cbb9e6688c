// SPDX-License-Identifier: MIT

package segment

import "fmt"

// Segment is a half-open column range [Start, End).
// Start <= End always holds for planner output; Start == End is an empty segment.
type Segment struct {
	Start int // first column (inclusive)
	End   int // one past the last column (exclusive)
}

// Len returns the number of columns in the segment.
// Complexity: O(1).
func (s Segment) Len() int { return s.End - s.Start }

// Empty reports whether the segment holds no columns.
func (s Segment) Empty() bool { return s.End <= s.Start }

// Contains reports whether column col lies inside [Start, End).
func (s Segment) Contains(col int) bool { return col >= s.Start && col < s.End }

// String renders the segment as "[start,end)".
func (s Segment) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
