// Package lvpar is a partitioned, shared-memory parallel update engine: a
// dense float64 matrix is split into disjoint column segments, one worker
// per segment mutates its own window in place, and the caller gets the
// finished matrix back after a single join.
//
// ✨ Why lvpar?
//
//   - No locks on the data path – disjoint column windows are proven, not assumed
//   - Two strategies – shared-in-place windows or copy-then-merge private buffers
//   - Deterministic – bit-identical results for any worker count or schedule
//   - Heap or anonymous shared-memory mapping as backing storage
//
// Under the hood, everything is organized into small subpackages:
//
//	segment/ — column planner: W/N per worker, the last one absorbs the remainder
//	matrix/  — row-major Dense, strided ColumnView, split/copy/merge of column ranges
//	worker/  — immutable worker plans and the in-place increment loop
//	engine/  — orchestrator: plan → allocate → spawn → join → (merge) → done
//	config/  — viper-backed run parameters (file, LVPAR_* env, defaults)
//	cmd/     — the lvpar command line
//
// Quick sketch, 10 columns over 4 workers:
//
//	| w0 | w1 | w2 |   w3   |
//	|0  1|2  3|4  5|6 7 8 9 |
//
//	go install github.com/katalvlaran/lvpar/cmd/lvpar@latest
package lvpar
