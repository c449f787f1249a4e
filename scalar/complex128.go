// SPDX-License-Identifier: MIT
// Package scalar: complex IEEE field over complex128.

package scalar

// complex128Field implements Field[complex128] with complex IEEE arithmetic.
type complex128Field struct{}

// Complex128 returns the field over complex128.
// Like Float64, Div never errors: division by zero follows the complex
// IEEE rules of the Go runtime. The zero test is exact.
func Complex128() Field[complex128] { return complex128Field{} }

// Zero returns 0+0i. Complexity: O(1).
func (complex128Field) Zero() complex128 { return 0 }

// One returns 1+0i. Complexity: O(1).
func (complex128Field) One() complex128 { return 1 }

// Add returns a + b. Complexity: O(1).
func (complex128Field) Add(a, b complex128) complex128 { return a + b }

// Sub returns a - b. Complexity: O(1).
func (complex128Field) Sub(a, b complex128) complex128 { return a - b }

// Mul returns a * b. Complexity: O(1).
func (complex128Field) Mul(a, b complex128) complex128 { return a * b }

// Div returns a / b with complex IEEE semantics; the error is always nil.
func (complex128Field) Div(a, b complex128) (complex128, error) { return a / b, nil }

// IsZero reports whether a is exactly 0+0i.
func (complex128Field) IsZero(a complex128) bool { return a == 0 }
