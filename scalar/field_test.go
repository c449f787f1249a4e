// Package scalar_test contains unit tests for the stock Field
// implementations in the scalar package.
package scalar_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/malg/scalar"
	"github.com/stretchr/testify/require"
)

// TestFloat64Identities verifies the additive and multiplicative identities.
func TestFloat64Identities(t *testing.T) {
	f := scalar.Float64() // default exact-zero field

	require.Equal(t, 0.0, f.Zero())      // additive identity is 0
	require.Equal(t, 1.0, f.One())       // multiplicative identity is 1
	require.True(t, f.IsZero(f.Zero()))  // IsZero agrees with Zero
	require.False(t, f.IsZero(f.One()))  // One is not zero
	require.False(t, f.IsZero(1e-300))   // exact policy: tiny but nonzero stays nonzero
	require.True(t, f.IsZero(math.Abs(0.0))) // +0 is zero
}

// TestFloat64Arithmetic checks the four operations on float64.
func TestFloat64Arithmetic(t *testing.T) {
	f := scalar.Float64()

	require.Equal(t, 5.0, f.Add(2, 3))  // 2 + 3 = 5
	require.Equal(t, -1.0, f.Sub(2, 3)) // 2 - 3 = -1
	require.Equal(t, 6.0, f.Mul(2, 3))  // 2 * 3 = 6

	q, err := f.Div(6, 3)    // 6 / 3
	require.NoError(t, err)  // IEEE division never errors
	require.Equal(t, 2.0, q) // quotient is 2
}

// TestFloat64DivByZeroIEEE ensures division by zero follows IEEE rules
// rather than returning an error.
func TestFloat64DivByZeroIEEE(t *testing.T) {
	f := scalar.Float64()

	q, err := f.Div(1, 0)                // 1 / 0
	require.NoError(t, err)              // no error by contract
	require.True(t, math.IsInf(q, +1))   // result is +Inf

	q, err = f.Div(0, 0)                 // 0 / 0
	require.NoError(t, err)              // still no error
	require.True(t, math.IsNaN(q))       // result is NaN
}

// TestFloat64Tolerance verifies the widened zero test under WithTolerance.
func TestFloat64Tolerance(t *testing.T) {
	f := scalar.Float64(scalar.WithTolerance(1e-9)) // widen IsZero to 1e-9

	require.True(t, f.IsZero(5e-10))  // below tolerance counts as zero
	require.True(t, f.IsZero(-5e-10)) // tolerance is symmetric
	require.False(t, f.IsZero(2e-9))  // above tolerance stays nonzero
}

// TestWithTolerancePanics ensures nonsensical tolerances panic at the
// option-construction site (programmer error).
func TestWithTolerancePanics(t *testing.T) {
	require.Panics(t, func() { scalar.WithTolerance(-1) })             // negative
	require.Panics(t, func() { scalar.WithTolerance(math.NaN()) })     // NaN
	require.Panics(t, func() { scalar.WithTolerance(math.Inf(1)) })    // +Inf
	require.NotPanics(t, func() { scalar.WithTolerance(0) })           // exact is legal
}

// TestRatExactArithmetic checks exact rational arithmetic, including a
// case float64 cannot represent exactly (1/3).
func TestRatExactArithmetic(t *testing.T) {
	f := scalar.Rat()

	third := big.NewRat(1, 3) // 1/3
	sum := f.Add(third, f.Add(third, third))
	require.Equal(t, 0, sum.Cmp(f.One())) // 1/3 + 1/3 + 1/3 == 1 exactly

	q, err := f.Div(f.One(), big.NewRat(3, 1)) // 1 / 3
	require.NoError(t, err)
	require.Equal(t, 0, q.Cmp(third)) // quotient is exactly 1/3
}

// TestRatDivByZero ensures the exact field signals degenerate division.
func TestRatDivByZero(t *testing.T) {
	f := scalar.Rat()

	_, err := f.Div(f.One(), f.Zero())                  // 1 / 0
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)   // expect the sentinel

	_, err = f.Div(f.One(), nil)                        // nil divisor counts as zero
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)   // same sentinel
}

// TestRatOperandsNotMutated verifies every rational operation returns a
// fresh value and leaves its operands untouched.
func TestRatOperandsNotMutated(t *testing.T) {
	f := scalar.Rat()

	a := big.NewRat(1, 2) // 1/2
	b := big.NewRat(1, 4) // 1/4

	sum := f.Add(a, b) // 3/4

	require.Equal(t, 0, a.Cmp(big.NewRat(1, 2))) // a unchanged
	require.Equal(t, 0, b.Cmp(big.NewRat(1, 4))) // b unchanged
	require.NotSame(t, a, sum)                   // result is a fresh value
	require.NotSame(t, b, sum)                   // result is a fresh value
}

// TestRatNilIsZero checks the nil-normalization convention.
func TestRatNilIsZero(t *testing.T) {
	f := scalar.Rat()

	require.True(t, f.IsZero(nil))                            // nil counts as zero
	require.Equal(t, 0, f.Add(nil, f.One()).Cmp(f.One()))     // nil + 1 == 1
	require.Equal(t, 0, f.Mul(nil, f.One()).Sign())           // nil * 1 == 0
}

// TestComplex128Field exercises the complex field end to end.
func TestComplex128Field(t *testing.T) {
	f := scalar.Complex128()

	require.Equal(t, complex(0, 0), f.Zero()) // additive identity
	require.Equal(t, complex(1, 0), f.One())  // multiplicative identity

	a := complex(1, 2)                          // 1+2i
	b := complex(3, -1)                         // 3-i
	require.Equal(t, complex(4, 1), f.Add(a, b))  // (1+2i)+(3-i) = 4+i
	require.Equal(t, complex(-2, 3), f.Sub(a, b)) // (1+2i)-(3-i) = -2+3i
	require.Equal(t, complex(5, 5), f.Mul(a, b))  // (1+2i)(3-i) = 5+5i

	q, err := f.Div(f.Mul(a, b), b) // (a*b)/b
	require.NoError(t, err)         // complex division never errors
	require.InDelta(t, real(a), real(q), 1e-12) // real part round-trips
	require.InDelta(t, imag(a), imag(q), 1e-12) // imaginary part round-trips

	require.True(t, f.IsZero(f.Sub(a, a))) // a - a is zero
	require.False(t, f.IsZero(complex(0, 1e-300))) // exact policy on both parts
}
