// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep value semantics: every copy owns its buffer, no two instances alias.
//
// Complexity quicksheet:
//   - NewSquare: O(n²) zero-init; At/UpdateElement: O(1); Clone/CopyFrom: O(n²).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"            // method tag used in error wrappers
	ctxUpdate   = "UpdateElement" // method tag used in error wrappers
	ctxFromRows = "NewSquareFromRows"
	ctxCopyFrom = "CopyFrom"
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Square.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is a concrete N×N row-major matrix.
//   - n holds the dimension (rows == cols == n, n > 0 for any constructed value).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Square[T Number] struct {
	n    int // dimension, fixed at construction
	data []T // contiguous row-major storage (len == n*n), exclusively owned
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square[int])(nil)

// NewSquare creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of n*n cells.
//
// Inputs:
//   - n: positive dimension.
//
// Returns:
//   - *Square[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare[T Number](n int) (*Square[T], error) {
	// Validate dimension.
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Square[T]{n: n, data: make([]T, n*n)}, nil
}

// NewSquareFromRows builds a matrix from a row slice, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for literals and fixtures.
//
// Implementation:
//   - Stage 1: n = len(rows); n==0 -> ErrInvalidDimensions.
//   - Stage 2: every row must hold exactly n values, else ErrDimensionMismatch.
//   - Stage 3: copy rows into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (wrapped with the row index).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquareFromRows[T Number](rows [][]T) (*Square[T], error) {
	m, err := NewSquare[T](len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), m.n, ErrDimensionMismatch)
		}
		copy(m.data[i*m.n:(i+1)*m.n], row)
	}

	return m, nil
}

// Dimension returns n. No side effects.
// Complexity: O(1).
func (m *Square[T]) Dimension() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < n and 0 ≤ col < n.
//   - Stage 2: compute row*n + col.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods wrap with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square[T]) indexOf(row, col int) (int, error) {
	if !m.inRange(row) || !m.inRange(col) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// inRange reports whether idx is a valid row or column index.
func (m *Square[T]) inRange(idx int) bool { return idx >= 0 && idx < m.n }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates (hard failure on bad indices).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Returns:
//   - (value, nil) on success; (0, wrapped ErrOutOfRange) on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, squareErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// UpdateElement stores v at (row, col).
// MAIN DESCRIPTION:
//   - In-place element write with the soft-failure contract.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Behavior highlights:
//   - On invalid indices nothing is written; the returned ErrOutOfRange is a
//     report the caller may log and discard.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square[T]) UpdateElement(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxUpdate, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same dimension).
// MAIN DESCRIPTION:
//   - Copy construction: produce an independent Square with identical content.
//
// Behavior highlights:
//   - Independence: mutations on either side never reach the other.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square[T]) Clone() *Square[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Square[T]{n: m.n, data: cp}
}

// CopyFrom replaces m's dimension and content with an independent copy of src.
// MAIN DESCRIPTION:
//   - Copy assignment with value semantics.
//
// Implementation:
//   - Stage 1: src == nil -> ErrNilMatrix; src == m -> no-op (buffer kept).
//   - Stage 2: drop the old buffer unless its capacity already fits src,
//     then copy every cell.
//
// Behavior highlights:
//   - After return, m and src share no storage.
//   - Self-assignment never releases and re-acquires its own buffer.
//
// Complexity:
//   - Time O(n²), Space O(n²) when a new buffer is needed.
func (m *Square[T]) CopyFrom(src *Square[T]) error {
	if src == nil {
		return fmt.Errorf("%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if src == m {
		return nil
	}

	size := len(src.data)
	if cap(m.data) < size {
		m.data = make([]T, size)
	} else {
		m.data = m.data[:size]
	}
	copy(m.data, src.data)
	m.n = src.n

	return nil
}

// Equal reports whether a and b have the same dimension and identical cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// NaN cells compare equal to NaN, so a copy always equals its source.
// Complexity: O(n²).
func Equal[T Number](a, b *Square[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		x, y := a.data[i], b.data[i]
		if x != y && (x == x || y == y) { // x != x only for NaN
			return false
		}
	}

	return true
}

// Rows returns a freshly allocated [][]T snapshot of the matrix.
// Mutating the result never affects m.
// Complexity: O(n²).
func (m *Square[T]) Rows() [][]T {
	out := make([][]T, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = append([]T(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String renders the matrix with default RenderOptions (width 8, %g precision 6).
// Intended for diagnostics and the CLI transcript.
func (m *Square[T]) String() string {
	return m.render(gatherRenderOptions())
}
