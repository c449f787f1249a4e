// SPDX-License-Identifier: MIT
// Package matrix: square-matrix helpers.
//
// Identity is the usual companion of the augmented composition: reducing
// [A|I] carries the row combinations that invert A into the right part.

package matrix

import "github.com/katalvlaran/malg/scalar"

// Identity returns I_n: the n×n matrix with the multiplicative identity on
// the diagonal and the additive identity elsewhere.
//
// Errors: scalar.ErrNilField, ErrBadShape for n <= 0.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func Identity[T any](f scalar.Field[T], n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	id, err := New(f, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	// Set the diagonal deterministically in a single loop.
	one := f.One()
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		id.data[i*n+i] = one
	}

	// Return the identity matrix.
	return id, nil
}

// Trace returns the sum of the diagonal entries of a square matrix.
//
// Errors: scalar.ErrNilField, ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace[T any](f scalar.Field[T], m Matrix[T]) (T, error) {
	var zero T
	// Validate inputs.
	if err := ValidateField(f); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}

	// Accumulate the diagonal through the field.
	n := m.Rows()
	sum := f.Zero()
	// Fast path for *Dense: flat diagonal walk.
	if dm, ok := m.(*Dense[T]); ok {
		for i := 0; i < n; i++ {
			sum = f.Add(sum, dm.data[i*n+i])
		}
		return sum, nil
	}

	// Fallback: interface path.
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return zero, matrixErrorf(opTrace, err)
		}
		sum = f.Add(sum, v)
	}

	return sum, nil
}
