// Package matrix_test contains unit tests for the elementary row
// operations implemented by Dense.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/malg/matrix"
	"github.com/stretchr/testify/require"
)

// TestSwapRows verifies the canonical swap scenario:
// swapping rows 1 and 2 of [[1,2],[3,4],[5,6]].
func TestSwapRows(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.SwapRows(1, 2)) // exchange the last two rows

	requireRows(t, [][]float64{{1, 2}, {5, 6}, {3, 4}}, m) // rows 1 and 2 traded places
}

// TestSwapRowsSameIndex ensures i == j is a legal no-op.
func TestSwapRowsSameIndex(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.SwapRows(1, 1)) // same index: legal, changes nothing

	requireRows(t, [][]float64{{1, 2}, {3, 4}}, m) // contents untouched
}

// TestScaleRow verifies the canonical scale scenario:
// scaling row 1 of [[1,2],[3,4],[5,6]] by 2.
func TestScaleRow(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.ScaleRow(1, 2)) // double every entry of row 1

	requireRows(t, [][]float64{{1, 2}, {6, 8}, {5, 6}}, m) // only row 1 changed
}

// TestScaleRowByZero ensures scaling by the additive identity is permitted
// and zeroes the row — the capability does not forbid degenerate rows.
func TestScaleRowByZero(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.ScaleRow(0, 0)) // zero out the first row

	requireRows(t, [][]float64{{0, 0}, {3, 4}}, m) // row 0 is now all zeros
}

// TestScaleRowByOne ensures scaling by the multiplicative identity is a no-op.
func TestScaleRowByOne(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.ScaleRow(0, 1)) // identity scale

	requireRows(t, [][]float64{{1, 2}, {3, 4}}, m) // contents untouched
}

// TestAddRows verifies the canonical add scenario:
// row 2 += 2·row 0 on [[1,2],[3,4],[5,6]].
func TestAddRows(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.AddRows(2, 0, 2)) // row 2 becomes [5,6] + 2·[1,2]

	requireRows(t, [][]float64{{1, 2}, {3, 4}, {7, 10}}, m) // source row 0 unchanged
}

// TestAddRowsSameIndex ensures i == j is legal and yields row[i]·(1+a).
func TestAddRowsSameIndex(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.AddRows(0, 0, 2)) // row 0 becomes row 0·(1+2)

	requireRows(t, [][]float64{{3, 6}, {3, 4}}, m) // tripled in place
}

// TestRowOpsOutOfRange checks the ErrOutOfRange contract of every operation.
func TestRowOpsOutOfRange(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)   // j past the end
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)  // negative i
	require.ErrorIs(t, m.ScaleRow(2, 1), matrix.ErrOutOfRange)   // i past the end
	require.ErrorIs(t, m.AddRows(0, 2, 1), matrix.ErrOutOfRange) // j past the end
	require.ErrorIs(t, m.AddRows(2, 0, 1), matrix.ErrOutOfRange) // i past the end

	requireRows(t, [][]float64{{1, 2}, {3, 4}}, m) // failed calls must not mutate
}
