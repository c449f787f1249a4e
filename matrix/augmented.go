// SPDX-License-Identifier: MIT
// Package matrix: the augmented [left|right] composition.
//
// Purpose:
//   - Pair two equal-height matrices so that every row operation applies to
//     both, keeping them in row-index lock-step.
//   - This is the standard device behind solving Ax=b (augment A with b)
//     and inversion (augment A with the identity): reducing the composition
//     brings the left part to echelon form while the right part receives
//     the identical sequence of row combinations.
//
// Determinism & Policy:
//   - Each operation runs on the left part first, then the right part, with
//     identical indices and scalar.
//   - Row and Cols describe the LEFT part only; the right part is reachable
//     through the Right accessor. The reduction orients itself on left-part
//     pivot columns, so the right width must stay invisible to it.

package matrix

import "fmt"

// augmentedErrorf wraps an underlying error with Augmented method context.
func augmentedErrorf(method string, err error) error {
	return fmt.Errorf("Augmented.%s: %w", method, err)
}

// Augmented is a pair of matrices [left|right] with equal row counts,
// mutated in lock-step by every row operation. Conceptually one block
// matrix; physically two independent grids.
type Augmented[T any] struct {
	left  *Dense[T] // coefficient side; defines Row/Rows/Cols
	right *Dense[T] // carried side (typically the RHS of a linear system)
}

// NewAugmented builds the composition [left|right].
// Stage 1 (Validate): both parts non-nil, equal row counts.
// Stage 2 (Finalize): wrap the pair; the composition takes ownership and
// the parts must not be mutated elsewhere while it is in use.
// Complexity: O(1) — no copying; the parts back the composition directly.
func NewAugmented[T any](left, right *Dense[T]) (*Augmented[T], error) {
	// Both parts are required.
	if left == nil || right == nil {
		return nil, augmentedErrorf("New", ErrNilMatrix)
	}
	// Equal row counts is the construction-time invariant; every mutation
	// afterwards applies to both parts by row index and preserves it.
	if left.Rows() != right.Rows() {
		return nil, augmentedErrorf("New", ErrDimensionMismatch)
	}

	return &Augmented[T]{left: left, right: right}, nil
}

// Left returns the coefficient part of the composition.
// Complexity: O(1).
func (a *Augmented[T]) Left() *Dense[T] { return a.left }

// Right returns the carried part of the composition — after reduction,
// the transformed right-hand side of the system.
// Complexity: O(1).
func (a *Augmented[T]) Right() *Dense[T] { return a.right }

// Rows reports the shared row count of both parts.
// Complexity: O(1).
func (a *Augmented[T]) Rows() int { return a.left.Rows() }

// Cols reports the column count of the LEFT part only. The right part's
// width is deliberately not exposed through RowOps; query Right() directly.
// Complexity: O(1).
func (a *Augmented[T]) Cols() int { return a.left.Cols() }

// Row returns an owned copy of row i of the LEFT part only.
// Complexity: O(c) for the left width.
func (a *Augmented[T]) Row(i int) ([]T, error) {
	row, err := a.left.Row(i)
	if err != nil {
		return nil, augmentedErrorf("Row", err)
	}

	return row, nil
}

// SwapRows exchanges rows i and j in both parts.
// Complexity: O(cLeft + cRight).
func (a *Augmented[T]) SwapRows(i, j int) error {
	// Left part first; an invalid index fails here before any mutation.
	if err := a.left.SwapRows(i, j); err != nil {
		return augmentedErrorf("SwapRows", err)
	}
	// Right part second, identical indices. Row counts are equal by
	// invariant, so this cannot fail after the left succeeded.
	if err := a.right.SwapRows(i, j); err != nil {
		return augmentedErrorf("SwapRows", err)
	}

	return nil
}

// ScaleRow scales row i by a in both parts.
// Complexity: O(cLeft + cRight).
func (a *Augmented[T]) ScaleRow(i int, v T) error {
	if err := a.left.ScaleRow(i, v); err != nil {
		return augmentedErrorf("ScaleRow", err)
	}
	if err := a.right.ScaleRow(i, v); err != nil {
		return augmentedErrorf("ScaleRow", err)
	}

	return nil
}

// AddRows adds a·row[j] into row i in both parts.
// Complexity: O(cLeft + cRight).
func (a *Augmented[T]) AddRows(i, j int, v T) error {
	if err := a.left.AddRows(i, j, v); err != nil {
		return augmentedErrorf("AddRows", err)
	}
	if err := a.right.AddRows(i, j, v); err != nil {
		return augmentedErrorf("AddRows", err)
	}

	return nil
}
