// SPDX-License-Identifier: MIT

// Package matrix provides the shared float64 buffer that parallel workers mutate.
//
// The matrix package provides:
//
//   - Dense: a row-major R×C buffer (offset = i*C + j) with safe accessors that
//     return sentinel errors instead of panicking.
//   - ColumnView: a strided, non-owning window (offset, stride, rows, cols)
//     over a Dense. Writes through a view land in the base buffer.
//   - SplitColumns: cuts one view per column segment in a single pass after
//     proving the segments disjoint, so concurrent writers never alias.
//   - CopyColumns / WriteColumns: private copies and write-back for the
//     copy-then-merge strategy.
//   - WithSharedMapping: backs a Dense by an anonymous shared memory mapping
//     instead of the Go heap.
//
// Layout is fixed as row-major for the lifetime of a Dense. A column segment
// is therefore not contiguous: each row contributes one contiguous run of
// Len() elements, and consecutive runs are Stride() elements apart.
package matrix
