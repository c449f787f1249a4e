// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the scalar
// package. Field implementations MUST return these sentinels and tests MUST
// check them via errors.Is. No implementation should panic on user-triggered
// error conditions; panics are reserved for programmer errors in option
// constructors.

package scalar

import "errors"

var (
	// ErrDivisionByZero is returned by Div when the divisor is the additive
	// identity and the scalar type signals failure explicitly (exact types).
	// IEEE fields do not return it; they produce the IEEE result instead.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNilField indicates that a nil Field was supplied where arithmetic
	// is required (matrix constructors, kernels, reduction).
	ErrNilField = errors.New("scalar: nil field")
)
