// SPDX-License-Identifier: MIT
// Package scalar: IEEE-754 float64 field with a configurable zero policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero policy is explicit: exact comparison by default, opt-in tolerance.

package scalar

import (
	"fmt"
	"math"
)

// DefaultTolerance is the zero-test tolerance applied when none is given:
// exact comparison. Reduction follows the first-nonzero pivot rule, so any
// widening of the zero test is an explicit caller decision.
const DefaultTolerance = 0.0

// float64Field implements Field[float64] with IEEE-754 semantics.
// eps widens IsZero to |a| <= eps; eps == 0 means exact comparison.
type float64Field struct {
	eps float64 // zero-test tolerance, validated non-negative and finite
}

// Float64Option customizes the float64 field (functional options).
type Float64Option func(*float64Field)

// WithTolerance makes IsZero treat every |a| <= eps as zero.
// Useful when entries come from prior floating-point computation and exact
// zeros have decayed into round-off noise.
//
// Panics if eps is negative, NaN or Inf — a nonsensical tolerance is a
// programmer error, not a runtime condition.
func WithTolerance(eps float64) Float64Option {
	// Validate eagerly so the panic points at the call site, not at use time.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < DefaultTolerance {
		panic(fmt.Sprintf("scalar.WithTolerance: tolerance must be finite and non-negative, got %v", eps))
	}

	return func(f *float64Field) { f.eps = eps }
}

// Float64 returns the IEEE-754 field over float64.
// Div never errors: division by zero yields ±Inf or NaN per IEEE rules,
// which then propagate through subsequent arithmetic.
func Float64(opts ...Float64Option) Field[float64] {
	f := &float64Field{eps: DefaultTolerance}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Zero returns 0. Complexity: O(1).
func (f *float64Field) Zero() float64 { return 0 }

// One returns 1. Complexity: O(1).
func (f *float64Field) One() float64 { return 1 }

// Add returns a + b. Complexity: O(1).
func (f *float64Field) Add(a, b float64) float64 { return a + b }

// Sub returns a - b. Complexity: O(1).
func (f *float64Field) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b. Complexity: O(1).
func (f *float64Field) Mul(a, b float64) float64 { return a * b }

// Div returns a / b with IEEE semantics; the error is always nil.
// Division by zero produces ±Inf (or NaN for 0/0) rather than an error,
// matching how float64 behaves everywhere else in Go.
func (f *float64Field) Div(a, b float64) (float64, error) { return a / b, nil }

// IsZero reports |a| <= eps (exact a == 0 under the default policy).
func (f *float64Field) IsZero(a float64) bool {
	if f.eps == DefaultTolerance {
		return a == 0
	}

	return math.Abs(a) <= f.eps
}
