// SPDX-License-Identifier: MIT

// Package worker holds the unit of concurrent work of a parallel run.
//
// A Plan binds one column segment, an iteration count and the view a
// worker may touch. Run performs iterations−1 rounds of +1.0 over every
// element of that view, in place. Plans are built before any goroutine
// starts and never change afterwards.
//
// Determinism:
//
//   - After Run, every element of the view equals its input plus
//     iterations−1, independent of how workers interleave, because each
//     cell belongs to exactly one view.
package worker
