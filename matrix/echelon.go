// SPDX-License-Identifier: MIT
// Package matrix: in-place row-echelon reduction.
//
// Purpose:
//   - Bring any RowOps implementor to row echelon form with each pivot
//     normalized to the multiplicative identity.
//   - Written once against the capability: the same procedure reduces a
//     plain Dense and an Augmented composition without ever branching on
//     the concrete type.
//
// Determinism & Policy:
//   - Column-major outer loop, fixed top-down pivot scan: first nonzero at
//     or below the current pivot row wins. No partial pivoting — this is
//     intentional simplicity; for ill-conditioned floating-point systems
//     use an exact field or widen the zero test (scalar.WithTolerance).
//   - Rows below a new pivot are eliminated immediately within the same
//     column pass; rows above a pivot are never revisited. The result is
//     plain REF, not reduced REF.
//   - The only state carried between iterations is the pivot row counter;
//     it is monotonically non-decreasing and bounded by Rows(), so the
//     reduction terminates after exactly Cols() column passes.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/malg/scalar"
)

// opReduce tags errors surfaced by Reduce.
const opReduce = "Reduce"

// Reduce transforms m into row echelon form in place, using f for entry
// arithmetic. On an Augmented composition the left part is reduced while
// the right part receives the identical sequence of row combinations —
// the standard route to solving Ax=b or inverting by augmentation.
//
// Implementation:
//   - Stage 1: Validate f and m non-nil.
//   - Stage 2: For each column j, scan rows pivotRow..Rows()-1:
//     the first nonzero entry becomes the pivot (swap up, normalize by its
//     inverse); every later nonzero entry in the column is eliminated
//     against the pivot row at once.
//   - Stage 3: Advance pivotRow only when the column produced a pivot.
//
// Errors:
//   - scalar.ErrNilField / ErrNilMatrix on nil inputs.
//   - Scalar division failures (e.g. scalar.ErrDivisionByZero from exact
//     fields) propagate wrapped; the algorithm adds no guard of its own —
//     degenerate arithmetic is the field's contract, not the reduction's.
//   - Row-operation errors propagate wrapped, though indices generated
//     here are in range by construction.
//
// Complexity:
//   - Time O(r*c) row operations, each O(c) — O(r*c²) entry operations.
//   - Space O(c) for row snapshots; the mutation itself is in place.
func Reduce[T any](f scalar.Field[T], m RowOps[T]) error {
	// Validate the field and the target.
	if err := ValidateField(f); err != nil {
		return reduceErrorf(err)
	}
	if m == nil {
		return reduceErrorf(validatorErrorf("ValidateNotNil", ErrNilMatrix))
	}

	rows, cols := m.Rows(), m.Cols()

	var (
		pivotRow int  // next row to place a pivot in; the only carried state
		found    bool // whether the current column produced a pivot
		row      []T  // snapshot of the row under inspection
		err      error
	)
	for j := 0; j < cols; j++ { // column-major outer loop, exactly cols passes
		found = false
		for k := pivotRow; k < rows; k++ { // scan at and below the pivot row
			// Inspect entry (k, j) through the capability.
			if row, err = m.Row(k); err != nil {
				return reduceErrorf(err)
			}
			if f.IsZero(row[j]) {
				continue // nothing to pivot on or eliminate here
			}

			if !found {
				// First nonzero at or below pivotRow: fix it as the pivot.
				found = true
				if err = m.SwapRows(pivotRow, k); err != nil {
					return reduceErrorf(err)
				}
				// Re-read the pivot entry after the swap, then normalize the
				// pivot row so its leading entry becomes the identity.
				if row, err = m.Row(pivotRow); err != nil {
					return reduceErrorf(err)
				}
				var inv T
				if inv, err = f.Div(f.One(), row[j]); err != nil {
					return reduceErrorf(err)
				}
				if err = m.ScaleRow(pivotRow, inv); err != nil {
					return reduceErrorf(err)
				}
			} else {
				// Established pivot: eliminate this row's entry immediately by
				// adding −leading × (normalized pivot row).
				if err = m.AddRows(k, pivotRow, f.Sub(f.Zero(), row[j])); err != nil {
					return reduceErrorf(err)
				}
			}
		}
		// A column with no nonzero at or below pivotRow contributes no pivot;
		// the next column is tried against the same pivot row.
		if found {
			pivotRow++
		}
	}

	return nil
}

// reduceErrorf wraps err with the Reduce operation tag, preserving the
// original error via %w for errors.Is matching.
func reduceErrorf(err error) error {
	return fmt.Errorf("%s: %w", opReduce, err)
}
