// Package matrix_test: shared helpers for the matrix package tests and
// benchmarks. All helpers go through the public API only.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/malg/matrix"
	"github.com/katalvlaran/malg/scalar"
	"github.com/stretchr/testify/require"
)

// f64 is the default exact-zero float64 field used across the tests.
var f64 = scalar.Float64()

// mustDense allocates a zero rows×cols float64 Dense, failing fast on error.
func mustDense(tb testing.TB, rows, cols int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.New(f64, rows, cols)
	require.NoError(tb, err) // construction must succeed for valid shapes
	return m
}

// mustFromRows builds a float64 Dense from literal rows, failing fast on error.
func mustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.FromRows(f64, rows)
	require.NoError(tb, err) // literal grids in tests are always rectangular
	return m
}

// fillDenseRand populates m with deterministic pseudo-random values in [-5, 5).
func fillDenseRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed)) // fixed seed keeps runs reproducible
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*10-5))
		}
	}
}

// requireRows asserts the full contents of m equal want, row by row, exactly.
func requireRows(tb testing.TB, want [][]float64, m *matrix.Dense[float64]) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows()) // row count must match first
	for i := range want {
		row, err := m.Row(i)
		require.NoError(tb, err)        // in-range row reads never fail
		require.Equal(tb, want[i], row) // exact element-wise comparison
	}
}

// requireRowsInDelta asserts the contents of m equal want within eps,
// for results that pass through inexact floating-point division.
func requireRowsInDelta(tb testing.TB, want [][]float64, m *matrix.Dense[float64], eps float64) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows())
	for i := range want {
		row, err := m.Row(i)
		require.NoError(tb, err)
		require.Len(tb, row, len(want[i]))
		for j := range want[i] {
			require.InDelta(tb, want[i][j], row[j], eps, "entry (%d,%d)", i, j)
		}
	}
}
