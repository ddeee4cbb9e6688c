// SPDX-License-Identifier: MIT

// Package segment plans how the columns of a matrix are divided between
// a fixed number of workers.
//
// What:
//
//   - Segment is a half-open column range [Start, End).
//   - Plan splits W columns into N contiguous segments of W/N columns each;
//     the last segment absorbs the remainder W mod N.
//   - Validate proves, at run time, that a set of segments is ordered,
//     pairwise disjoint and covers [0, W) exactly once.
//
// Why:
//
//   - Disjoint column ranges are the only thing that makes lock-free
//     concurrent mutation of one shared buffer safe. The planner is the single
//     source of that guarantee, so it is kept pure and tiny.
//
// Edge cases:
//
//   - N == 1 yields the single segment [0, W).
//   - W < N makes base == 0: every segment but the last is empty and the last
//     one is [0, W). Empty segments are legal; they turn into no-op workers.
//
// Complexity:
//
//   - Plan: O(N) time, O(N) memory. Validate: O(N).
//
// Errors:
//
//   - ErrInvalidPartition: N < 1, W < 1, or a segment set that breaks the
//     cover/disjointness invariant.
package segment
