// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel takes the scalar field as its first argument and returns
//     a freshly allocated *Dense result; operands are never mutated.
//   - Kernels use central validators and wrap failures via matrixErrorf.
//   - *Dense operands unlock flat-slice fast paths; any other Matrix
//     implementation falls back to the At/Set interface path with fixed
//     i→j loop order.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/malg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opIdentity  = "Identity"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign·b for sign ∈ {One, −One}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation, and the fast path.
func addSub[T any](f scalar.Field[T], a, b Matrix[T], sign T, opTag string) (Matrix[T], error) {
	// Validate the field and that shapes match.
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := New(f, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = f.Add(da.data[idx], f.Mul(sign, db.data[idx]))
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int // loop iterators (deterministic order)
	var av, bv T // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, f.Add(av, f.Mul(sign, bv))); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result.
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors: scalar.ErrNilField, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func Add[T any](f scalar.Field[T], a, b Matrix[T]) (Matrix[T], error) {
	return addSub(f, a, b, f.One(), opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh
// Dense result.
//
// Errors: scalar.ErrNilField, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func Sub[T any](f scalar.Field[T], a, b Matrix[T]) (Matrix[T], error) {
	return addSub(f, a, b, f.Sub(f.Zero(), f.One()), opSub)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate field and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     skip zero A[i,k]; otherwise use i→j→k with fixed order.
//
// Errors: scalar.ErrNilField, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T any](f scalar.Field[T], a, b Matrix[T]) (Matrix[T], error) {
	// Validate inputs via canonical validators.
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := New(f, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		av, bv  T   // element temporaries
		current T   // accumulator
	)
	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if f.IsZero(av) {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] = f.Add(res.data[rowOffsetR+j], f.Mul(av, db.data[rowOffsetB+j]))
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = f.Zero()
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if f.IsZero(av) {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current = f.Add(current, f.Mul(av, bv)) // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result.
	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j]·alpha (post-multiply).
// The original matrix is never mutated. Scaling by the additive identity
// yields an explicit zero matrix of the same shape.
//
// Errors: scalar.ErrNilField, ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T any](f scalar.Field[T], m Matrix[T], alpha T) (Matrix[T], error) {
	// Validate inputs.
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense.
	rows, cols := m.Rows(), m.Cols()
	res, err := New(f, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path for Dense → Dense.
	if dm, ok := m.(*Dense[T]); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = f.Mul(dm.data[idx], alpha)
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, f.Mul(v, alpha)); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result.
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors: scalar.ErrNilField, ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T any](f scalar.Field[T], m Matrix[T]) (Matrix[T], error) {
	// Validate inputs.
	if err := ValidateField(f); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := New(f, cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path for Dense → Dense.
	var i, j int // loop iterators
	if dm, ok := m.(*Dense[T]); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result.
	return res, nil
}
