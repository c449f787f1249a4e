// SPDX-License-Identifier: MIT

// Package matrix: domain-facing contracts.
// This file intentionally contains ONLY the public interfaces of the package:
// the Matrix container view and the RowOps capability. Errors live in
// errors.go and validators in validators.go per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable grid of field elements.
// Dimensions are fixed at construction; content is mutable in place.
//
// Complexity notes: all methods are expected O(1) except Row (O(c)) and
// Clone (O(r*c)).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Row returns an owned copy of row i, ordered left to right.
	// Returns ErrOutOfRange if i is invalid. The returned slice never
	// aliases internal storage; mutation goes through Set or RowOps only.
	// Complexity: O(c).
	Row(i int) ([]T, error)

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(r*c).
	Clone() Matrix[T]
}

// RowOps is the elementary row-operation capability consumed by Reduce.
// It is implemented independently by *Dense (a plain grid) and *Augmented
// (a [left|right] pair mutated in lock-step); the reduction algorithm is
// written once against this interface and never branches on concrete type.
//
// For an Augmented implementation, Row and Cols deliberately describe the
// LEFT part only: the reduction orients itself on left-part pivot columns
// while the right part is carried along passively.
type RowOps[T any] interface {
	// SwapRows exchanges rows i and j in place.
	// i == j is a legal no-op. Returns ErrOutOfRange on invalid indices.
	SwapRows(i, j int) error

	// ScaleRow replaces row i with a·row[i] in place.
	// Scaling by the additive identity zeroes the row and is permitted.
	// Returns ErrOutOfRange on an invalid index.
	ScaleRow(i int, a T) error

	// AddRows replaces row i with row[i] + a·row[j] in place; row j is
	// left unchanged. i == j is legal and yields row[i]·(1+a).
	// Returns ErrOutOfRange on invalid indices.
	AddRows(i, j int, a T) error

	// Row returns an owned copy of row i (left part only for Augmented).
	// Returns ErrOutOfRange on an invalid index.
	Row(i int) ([]T, error)

	// Rows reports the fixed row count.
	Rows() int

	// Cols reports the fixed column count (left part only for Augmented).
	Cols() int
}
