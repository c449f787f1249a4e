// SPDX-License-Identifier: MIT
// Package scalar: exact rational field over math/big.
//
// Purpose:
//   - Give reduction an exact scalar type: no round-off, division failures
//     are explicit errors instead of infinities.
//
// Notes:
//   - *big.Rat is pointer-shaped; every operation here allocates a fresh
//     value so matrix storage is never aliased or mutated through the field.
//   - nil operands are normalized to the zero rational, mirroring the
//     zero-value convention of big.Rat itself.

package scalar

import "math/big"

// ratField implements Field[*big.Rat] with exact arithmetic.
type ratField struct{}

// Rat returns the exact rational field over *big.Rat.
// Div reports ErrDivisionByZero instead of producing a value, which makes
// it the right field for callers who need degenerate pivots surfaced.
func Rat() Field[*big.Rat] { return ratField{} }

// ratVal normalizes nil to the zero rational so callers may use nil
// interchangeably with new(big.Rat).
func ratVal(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}

// Zero returns a fresh zero rational. Complexity: O(1).
func (ratField) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh rational 1/1. Complexity: O(1).
func (ratField) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b as a fresh value; operands are not mutated.
func (ratField) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(ratVal(a), ratVal(b)) }

// Sub returns a - b as a fresh value; operands are not mutated.
func (ratField) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(ratVal(a), ratVal(b)) }

// Mul returns a * b as a fresh value; operands are not mutated.
func (ratField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(ratVal(a), ratVal(b)) }

// Div returns a / b as a fresh value, or ErrDivisionByZero when b is the
// zero rational. Operands are not mutated.
func (ratField) Div(a, b *big.Rat) (*big.Rat, error) {
	bv := ratVal(b)
	if bv.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(ratVal(a), bv), nil
}

// IsZero reports whether a is the zero rational (nil counts as zero).
func (ratField) IsZero(a *big.Rat) bool { return ratVal(a).Sign() == 0 }
