// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and ColumnView tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvpar/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c Dense from a row-major slice.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	require.Len(tb, vals, r*c)
	m := MustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, vals[i*c+j]))
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m interface {
	At(i, j int) (float64, error)
}, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// Sequence returns an r×c Dense with element (i,j) = i*c + j.
func Sequence(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = float64(k)
	}

	return NewFilledDense(tb, r, c, vals)
}
