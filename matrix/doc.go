// Package matrix provides dense linear-algebra primitives over any scalar
// field: generic row-major containers, elementary row operations, augmented
// [A|B] compositions, and an in-place echelon reduction.
//
// The matrix package provides:
//
//   - Dense[T], a fixed-shape row-major container whose arithmetic is driven
//     by a scalar.Field supplied at construction.
//   - RowOps, the capability interface (swap, scale, add-rows, row access)
//     implemented by both Dense and Augmented — the reduction never learns
//     which shape it is mutating.
//   - Augmented[T], two equal-height matrices kept in row-index lock-step,
//     the standard device for solving Ax=b or inverting by augmentation.
//   - Reduce, a single-pass row-echelon reduction with first-nonzero pivot
//     selection and immediate elimination below each pivot.
//   - Collaborator kernels (Add, Sub, Mul, Scale, Transpose, Identity,
//     Trace) for building and inspecting the systems being reduced.
//
// All operations validate fail-fast and report sentinel errors; nothing in
// this package panics on user input. Dimensions are fixed at construction
// and every mutation preserves them.
//
// See the examples in this package for usage patterns, including exact
// reduction over *big.Rat.
package matrix
