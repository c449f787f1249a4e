// Package scalar defines the Field capability: the minimal arithmetic a
// value type must support to serve as a matrix entry — an additive
// identity, a multiplicative identity, and the four operations
// (+, −, ×, ÷) plus a zero test.
//
// The package ships three stock fields:
//
//   - Float64    — IEEE-754 arithmetic; division never errors (Inf/NaN propagate);
//     an optional tolerance widens the zero test for noisy data.
//   - Rat        — exact rational arithmetic over *big.Rat; division by zero
//     reports ErrDivisionByZero instead of producing a value.
//   - Complex128 — complex IEEE arithmetic with an exact zero test.
//
// Implementations must be pure: operands are never mutated, and every
// operation returns a fresh value. This matters for pointer-shaped scalars
// (*big.Rat), where in-place arithmetic would alias matrix storage.
//
// See the matrix package for the containers and the echelon reduction that
// consume a Field.
package scalar
