// SPDX-License-Identifier: MIT

// Package engine_test verifies orchestration, strategies and failure reporting.
package engine_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvpar/engine"
	"github.com/katalvlaran/lvpar/matrix"
	"github.com/katalvlaran/lvpar/segment"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"
)

var strategies = []engine.Strategy{engine.SharedInPlace, engine.CopyThenMerge}

// requireAll asserts every cell of m equals want.
func requireAll(t *testing.T, m *matrix.Dense, want float64) {
	t.Helper()
	m.Do(func(i, j int, v float64) bool {
		if v != want {
			t.Fatalf("cell (%d,%d) = %v, want %v", i, j, v, want)
		}
		return true
	})
}

// counter sums a tally counter across all tag sets.
func counter(s tally.TestScope, name string) int64 {
	var total int64
	for _, c := range s.Snapshot().Counters() {
		if strings.HasSuffix(c.Name(), "."+name) {
			total += c.Value()
		}
	}

	return total
}

// stateRecorder collects lifecycle transitions.
type stateRecorder struct {
	mu     sync.Mutex
	states []engine.State
	ids    map[uuid.UUID]struct{}
}

func newStateRecorder() *stateRecorder {
	return &stateRecorder{ids: make(map[uuid.UUID]struct{})}
}

func (r *stateRecorder) hook(id uuid.UUID, s engine.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
	r.ids[id] = struct{}{}
}

// TestExecuteDocumentedExample runs R=10, C=10, N=4, iterations=5000.
func TestExecuteDocumentedExample(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			m, err := engine.Execute(engine.Params{Iterations: 5000, Rows: 10, Cols: 10, Workers: 4}, engine.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, 10, m.Rows())
			require.Equal(t, 10, m.Cols())
			requireAll(t, m, 4999)
		})
	}
}

// TestExecuteShapes covers remainders, N == C, N > C and single workers.
func TestExecuteShapes(t *testing.T) {
	cases := []engine.Params{
		{Iterations: 7, Rows: 1, Cols: 1, Workers: 1},
		{Iterations: 7, Rows: 3, Cols: 10, Workers: 3},
		{Iterations: 3, Rows: 5, Cols: 9, Workers: 9},
		{Iterations: 3, Rows: 5, Cols: 2, Workers: 7},
		{Iterations: 1, Rows: 4, Cols: 4, Workers: 2},
		{Iterations: 20, Rows: 17, Cols: 129, Workers: engine.MaxWorkers},
	}
	for _, s := range strategies {
		for _, p := range cases {
			t.Run(fmt.Sprintf("%s/%+v", s, p), func(t *testing.T) {
				m, err := engine.Execute(p, engine.WithStrategy(s))
				require.NoError(t, err)
				requireAll(t, m, float64(p.Iterations-1))
			})
		}
	}
}

// TestExecuteInvalidPartition ensures validation fails before allocation or spawning.
func TestExecuteInvalidPartition(t *testing.T) {
	bad := []engine.Params{
		{Iterations: 10, Rows: 10, Cols: 10, Workers: 0},
		{Iterations: 10, Rows: 10, Cols: 10, Workers: engine.MaxWorkers + 1},
		{Iterations: 10, Rows: 0, Cols: 10, Workers: 2},
		{Iterations: 10, Rows: 10, Cols: -1, Workers: 2},
		{Iterations: 0, Rows: 10, Cols: 10, Workers: 2},
	}
	for _, p := range bad {
		t.Run(fmt.Sprintf("%+v", p), func(t *testing.T) {
			rec := newStateRecorder()
			spawned := false
			scope := tally.NewTestScope("test", nil)

			m, err := engine.Execute(p,
				engine.WithStateHook(rec.hook),
				engine.WithTaskHook(func(int, segment.Segment) { spawned = true }),
				engine.WithMetricsScope(scope),
			)
			require.ErrorIs(t, err, engine.ErrInvalidPartition)
			require.ErrorIs(t, err, segment.ErrInvalidPartition)
			require.Nil(t, m)
			require.False(t, spawned)
			require.Equal(t, []engine.State{engine.Planning, engine.Failed}, rec.states)
			require.Zero(t, counter(scope, engine.MetricWorkersSpawned))
			require.EqualValues(t, 1, counter(scope, engine.MetricRunsFailed))
		})
	}
}

// TestExecuteStateSequence checks the happy-path lifecycle and one run id per run.
func TestExecuteStateSequence(t *testing.T) {
	rec := newStateRecorder()
	_, err := engine.Execute(engine.Params{Iterations: 3, Rows: 2, Cols: 8, Workers: 4}, engine.WithStateHook(rec.hook))
	require.NoError(t, err)
	require.Equal(t, []engine.State{engine.Planning, engine.Spawned, engine.Joining, engine.Done}, rec.states)
	require.Len(t, rec.ids, 1)
}

// TestExecuteWorkerFailed injects a panic into one worker.
func TestExecuteWorkerFailed(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			rec := newStateRecorder()
			scope := tally.NewTestScope("test", nil)
			boom := errors.New("boom")

			m, err := engine.Execute(
				engine.Params{Iterations: 100, Rows: 4, Cols: 10, Workers: 3},
				engine.WithStrategy(s),
				engine.WithStateHook(rec.hook),
				engine.WithMetricsScope(scope),
				engine.WithTaskHook(func(i int, _ segment.Segment) {
					if i == 2 {
						panic(boom)
					}
				}),
			)
			require.Nil(t, m)
			require.ErrorIs(t, err, engine.ErrWorkerFailed)
			require.ErrorIs(t, err, boom)

			var wf *engine.WorkerFailedError
			require.ErrorAs(t, err, &wf)
			require.Equal(t, 2, wf.Index)
			require.Equal(t, segment.Segment{Start: 6, End: 10}, wf.Segment)
			require.Contains(t, err.Error(), "[6,10)")

			require.Equal(t, engine.Failed, rec.states[len(rec.states)-1])
			require.NotContains(t, rec.states, engine.Done)
			require.EqualValues(t, 1, counter(scope, engine.MetricWorkersFailed))
			require.EqualValues(t, 1, counter(scope, engine.MetricRunsFailed))
			require.Zero(t, counter(scope, engine.MetricRunsCompleted))
		})
	}
}

// TestExecuteWorkerFailedNonError covers a panic with a non-error value.
func TestExecuteWorkerFailedNonError(t *testing.T) {
	_, err := engine.Execute(
		engine.Params{Iterations: 2, Rows: 1, Cols: 2, Workers: 2},
		engine.WithTaskHook(func(i int, _ segment.Segment) {
			if i == 0 {
				panic("bad worker")
			}
		}),
	)
	require.ErrorIs(t, err, engine.ErrWorkerFailed)
	require.Contains(t, err.Error(), "bad worker")
}

// TestExecuteDeterminism compares worker counts and strategies bit for bit.
func TestExecuteDeterminism(t *testing.T) {
	base := engine.Params{Iterations: 40, Rows: 64, Cols: 97}

	base.Workers = 1
	want, err := engine.Execute(base)
	require.NoError(t, err)

	for _, s := range strategies {
		for _, n := range []int{1, 2, 4, 13, 97, 120} {
			p := base
			p.Workers = n
			for rep := 0; rep < 2; rep++ {
				got, err := engine.Execute(p, engine.WithStrategy(s))
				require.NoError(t, err)
				require.True(t, want.Equal(got), "strategy=%s workers=%d rep=%d", s, n, rep)
			}
		}
	}
}

// TestExecuteSingleVsFourWorkersLarge is the 4096×4096, 5000-iteration comparison.
// It takes minutes, so it only runs with LVPAR_LARGE_TESTS=1.
func TestExecuteSingleVsFourWorkersLarge(t *testing.T) {
	if testing.Short() || os.Getenv("LVPAR_LARGE_TESTS") != "1" {
		t.Skip("set LVPAR_LARGE_TESTS=1 to run")
	}
	p := engine.Params{Iterations: 5000, Rows: 4096, Cols: 4096, Workers: 1}
	one, err := engine.Execute(p)
	require.NoError(t, err)

	p.Workers = 4
	four, err := engine.Execute(p)
	require.NoError(t, err)
	require.True(t, one.Equal(four))
	requireAll(t, four, 4999)
}

// TestExecuteSharedMapping runs both strategies over a mapped master buffer.
func TestExecuteSharedMapping(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			m, err := engine.Execute(
				engine.Params{Iterations: 9, Rows: 6, Cols: 11, Workers: 4},
				engine.WithStrategy(s),
				engine.WithSharedMapping(),
			)
			if errors.Is(err, matrix.ErrSharedMappingUnsupported) {
				t.Skip("shared mapping unsupported on this platform")
			}
			require.NoError(t, err)
			require.True(t, m.Shared())
			requireAll(t, m, 8)
			require.NoError(t, m.Close())
		})
	}
}

// TestExecuteConcurrentRuns shares one Orchestrator between goroutines.
func TestExecuteConcurrentRuns(t *testing.T) {
	rec := newStateRecorder()
	o := engine.New(engine.WithStrategy(engine.CopyThenMerge), engine.WithStateHook(rec.hook))
	require.Equal(t, engine.CopyThenMerge, o.Strategy())

	const runs = 8
	var wg sync.WaitGroup
	wg.Add(runs)
	for i := 0; i < runs; i++ {
		go func(i int) {
			defer wg.Done()
			m, err := o.Execute(engine.Params{Iterations: i + 2, Rows: 3, Cols: 5, Workers: 2})
			require.NoError(t, err)
			requireAll(t, m, float64(i+1))
		}(i)
	}
	wg.Wait()
	require.Len(t, rec.ids, runs)
}
