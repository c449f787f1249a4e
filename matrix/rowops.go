// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations on Dense.
//
// Purpose:
//   - Implement the RowOps capability for the plain dense container.
//   - Keep every mutation in place, bounds-checked, and free of aliasing:
//     reads complete before writes at each position.
//
// Determinism & Policy:
//   - Fixed left-to-right element order in every operation.
//   - Out-of-range indices return ErrOutOfRange; nothing here panics.

package matrix

import "fmt"

// SwapRows exchanges rows i and j in place.
// i == j is a legal no-op.
// Complexity: O(c) time, O(1) extra memory.
func (m *Dense[T]) SwapRows(i, j int) error {
	// Validate both indices before touching storage.
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("Dense.SwapRows(%d,%d): %w", i, j, ErrOutOfRange)
	}
	// Equal indices: nothing to do, by contract.
	if i == j {
		return nil
	}

	// Swap element-wise within flat storage.
	baseI, baseJ := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[baseI+k], m.data[baseJ+k] = m.data[baseJ+k], m.data[baseI+k]
	}

	return nil
}

// ScaleRow replaces row i with a·row[i] in place.
// Scaling by the multiplicative identity is a no-op in effect; scaling by
// the additive identity zeroes the row and is permitted — the capability
// does not forbid creating a degenerate row.
// Complexity: O(c).
func (m *Dense[T]) ScaleRow(i int, a T) error {
	// Validate the row index.
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.ScaleRow(%d): %w", i, ErrOutOfRange)
	}

	// Multiply every entry through the field.
	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] = m.f.Mul(m.data[base+k], a)
	}

	return nil
}

// AddRows replaces row i with row[i] + a·row[j] in place; row j is left
// unchanged. At each position the reads complete before the write, so
// i == j is safe and yields row[i]·(1+a).
// Complexity: O(c).
func (m *Dense[T]) AddRows(i, j int, a T) error {
	// Validate both indices before touching storage.
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("Dense.AddRows(%d,%d): %w", i, j, ErrOutOfRange)
	}

	// Accumulate a·row[j] into row i, position by position.
	baseI, baseJ := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[baseI+k] = m.f.Add(m.data[baseI+k], m.f.Mul(m.data[baseJ+k], a))
	}

	return nil
}
