// SPDX-License-Identifier: MIT
// Package scalar: the Field capability contract.
//
// Purpose:
//   - Declare the single interface every matrix entry type must satisfy.
//   - Keep the contract minimal: identities, four operations, zero test.
//
// Determinism & Policy:
//   - All operations are pure functions of their operands; no hidden state.
//   - Operands are never mutated; pointer-shaped scalars return fresh values.

package scalar

// Field is the capability a value type must expose to act as a matrix
// entry for row operations and echelon reduction: an additive identity
// (Zero), a multiplicative identity (One), addition, subtraction,
// multiplication and division.
//
// Div is the only fallible operation. Exact fields report division by the
// additive identity as ErrDivisionByZero; IEEE fields return the IEEE
// result (±Inf or NaN) with a nil error. Callers needing explicit failure
// on degenerate pivots should pick a field whose Div signals it.
//
// IsZero decides pivot selection during reduction. It must agree with the
// field's own arithmetic: IsZero(Zero()) is always true, and IsZero(x)
// implies Div(One(), x) is degenerate for exact fields.
//
// Complexity notes: all methods are expected O(1) for fixed-width types;
// big.Rat operations cost O(len) in the operand size.
type Field[T any] interface {
	// Zero returns the additive identity of the field.
	Zero() T

	// One returns the multiplicative identity of the field.
	One() T

	// Add returns a + b. Operands are not mutated.
	Add(a, b T) T

	// Sub returns a - b. Operands are not mutated.
	Sub(a, b T) T

	// Mul returns a * b. Operands are not mutated.
	Mul(a, b T) T

	// Div returns a / b, or ErrDivisionByZero when the field signals
	// degenerate division explicitly. Operands are not mutated.
	Div(a, b T) (T, error)

	// IsZero reports whether a is (within the field's policy) the
	// additive identity.
	IsZero(a T) bool
}
