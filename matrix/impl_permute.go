// SPDX-License-Identifier: MIT

// Package matrix - in-place row/column permutations.
//
// Both swaps are involutions: applying the same swap twice restores the
// original matrix. Out-of-range indices are a soft failure: ErrOutOfRange is
// returned and nothing moves.

package matrix

import (
	"fmt"
	"slices"
)

const (
	ctxSwapRows    = "SwapRows"
	ctxSwapColumns = "SwapColumns"
)

// SwapRows exchanges the full contents of rows r1 and r2 in place.
// Implementation:
//   - Stage 1: validate both indices.
//   - Stage 2: swap the two n-length row segments cell by cell.
//
// Complexity: Time O(n), Space O(1).
func (m *Square[T]) SwapRows(r1, r2 int) error {
	if err := m.validatePair(r1, r2); err != nil {
		return fmt.Errorf("Square.%s(%d,%d): %w", ctxSwapRows, r1, r2, err)
	}
	if r1 == r2 {
		return nil
	}

	a := m.data[r1*m.n : (r1+1)*m.n]
	b := m.data[r2*m.n : (r2+1)*m.n]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// SwapColumns exchanges columns c1 and c2 in every row, in place.
// Complexity: Time O(n), Space O(1).
func (m *Square[T]) SwapColumns(c1, c2 int) error {
	if err := m.validatePair(c1, c2); err != nil {
		return fmt.Errorf("Square.%s(%d,%d): %w", ctxSwapColumns, c1, c2, err)
	}
	if c1 == c2 {
		return nil
	}

	for row := range slices.Chunk(m.data, m.n) {
		row[c1], row[c2] = row[c2], row[c1]
	}

	return nil
}
