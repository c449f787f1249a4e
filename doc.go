// Package malg is your in-memory toolkit for exact and floating-point
// matrix manipulation — dense containers, elementary row operations, and
// echelon reduction over any scalar field.
//
// 🚀 What is malg?
//
//	A small, deterministic library that brings together:
//		• Dense matrices: generic row-major containers with strict shape checks
//		• Row operations: swap, scale and add-rows behind one capability interface
//		• Augmented systems: [A|B] pairs reduced in lock-step for solving Ax=b
//		• Echelon reduction: one algorithm, written once, for plain and augmented shapes
//		• Scalar fields: float64, exact *big.Rat and complex128 out of the box
//
// ✨ Why choose malg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, fail-fast validation, no panics
//   - Pure Go – no cgo, deterministic loops, reproducible results
//   - Extensible – implement scalar.Field once and every kernel accepts your type
//
// Under the hood, everything is organized under two subpackages:
//
//	scalar/ — the Field capability (zero, one, +, −, ×, ÷) and stock implementations
//	matrix/ — Dense containers, RowOps, Augmented composition and Reduce
//
// Quick ASCII example:
//
//	⎡ 3 0 0 ⎤            ⎡ 1 0 0 ⎤
//	⎢ 0 2 0 ⎥  —Reduce→  ⎢ 0 1 0 ⎥
//	⎣ 0 0 1 ⎦            ⎣ 0 0 1 ⎦
//
// Dive into the package examples for augmented systems, exact rational
// reduction, and the full row-operation contract.
//
//	go get github.com/katalvlaran/malg
package malg
