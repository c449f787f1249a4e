// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix and RowOps interfaces, storing elements in a flat slice for
// performance and cache friendliness. The scalar.Field supplied at
// construction drives all row arithmetic.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/malg/scalar"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of field elements.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// f is the scalar field that defines entry arithmetic; it never mutates
// operands, so entries are safe to hand out by value.
type Dense[T any] struct {
	f    scalar.Field[T] // entry arithmetic, fixed at construction
	r, c int             // number of rows and columns
	data []T             // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix with every entry set to f.Zero().
// Stage 1 (Validate): ensure field is non-nil and rows, cols > 0.
// Stage 2 (Prepare): allocate flat backing slice and zero-fill via the field.
// Stage 3 (Finalize): return new Dense or a sentinel error.
// Complexity: O(r*c) time and memory.
func New[T any](f scalar.Field[T], rows, cols int) (*Dense[T], error) {
	// Validate the field first: without it no arithmetic is possible.
	if err := ValidateField(f); err != nil {
		return nil, err
	}
	// Validate dimensions.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate and zero-fill through the field (pointer-shaped scalars need
	// explicit zero values, not the slice's nil default).
	data := make([]T, rows*cols)
	zero := f.Zero()
	for i := range data {
		data[i] = zero
	}

	// Return initialized Dense.
	return &Dense[T]{f: f, r: rows, c: cols, data: data}, nil
}

// FromRows creates a fully populated Dense from a rectangular grid of rows.
// Stage 1 (Validate): non-nil field, non-empty grid, equal row lengths.
// Stage 2 (Prepare): allocate flat storage and copy entries row by row.
// Stage 3 (Finalize): return new Dense or ErrBadShape/ErrRaggedRows.
// Complexity: O(r*c) time and memory.
func FromRows[T any](f scalar.Field[T], rows [][]T) (*Dense[T], error) {
	// Validate the field.
	if err := ValidateField(f); err != nil {
		return nil, err
	}
	// Reject an empty grid or an empty leading row.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	// Enforce the rectangular invariant: every row has the same width.
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrRaggedRows
		}
	}

	// Copy entries into flat row-major storage.
	data := make([]T, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense[T]{f: f, r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// Field returns the scalar field driving this matrix's arithmetic.
// Complexity: O(1).
func (m *Dense[T]) Field() scalar.Field[T] {
	return m.f
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col) using zero-based indexing.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error.
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value.
	return m.data[idx], nil
}

// Set assigns value v at (row, col) using zero-based indexing.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error.
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value.
	m.data[idx] = v

	return nil
}

// Entry retrieves the element at (row, col) using one-based indexing,
// the convention of hand-written mathematics. Entry(1,1) is the top-left
// element. Returns ErrOutOfRange when either index is < 1 or beyond the
// matrix.
// Complexity: O(1).
func (m *Dense[T]) Entry(row, col int) (T, error) {
	// Guard the 1-based lower bound before translating, so Entry(0, 0)
	// does not alias At(-1, -1) error text.
	if row < 1 || col < 1 {
		var zero T
		return zero, denseErrorf("Entry", row, col, ErrOutOfRange)
	}

	return m.At(row-1, col-1)
}

// SetEntry assigns v at (row, col) using one-based indexing.
// Complexity: O(1).
func (m *Dense[T]) SetEntry(row, col int, v T) error {
	if row < 1 || col < 1 {
		return denseErrorf("SetEntry", row, col, ErrOutOfRange)
	}

	return m.Set(row-1, col-1, v)
}

// Row returns an owned copy of row i, ordered left to right.
// The returned slice never aliases internal storage, so callers cannot
// mutate the matrix through it; mutation goes through Set or the row
// operations only.
// Complexity: O(c) time and memory.
func (m *Dense[T]) Row(i int) ([]T, error) {
	// Validate the row index (column -1 marks a whole-row access in errors).
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}

	// Copy the row out of flat storage.
	row := make([]T, m.c)
	copy(row, m.data[i*m.c:(i+1)*m.c])

	return row, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() Matrix[T] {
	// Allocate new slice for data copy.
	copyData := make([]T, len(m.data))
	// Copy all elements into new slice.
	copy(copyData, m.data)

	return &Dense[T]{f: m.f, r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[")        // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
