// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Square: element-wise
// addition and the standard matrix product. Both perform fail-fast operand
// validation and return fresh, independently owned results.
//
// Notes:
//   - Kernels operate on the flat data slices directly; no At/Set round-trips.
//   - Operands are never mutated, so a.Add(a) and a.Mul(a) are safe.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Square.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and share a dimension.
//   - Stage 2: Single flat loop over n² cells.
//
// Behavior highlights:
//   - Commutative (and associative whenever T's addition is).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (dimension mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add[T Number](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateSameDimension(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := &Square[T]{n: a.n, data: make([]T, len(a.data))}
	for idx := range res.data { // deterministic 0..n²-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Mul performs the standard matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and share a dimension.
//   - Stage 2: i→k→j triple loop with row-major strides; for every (i,j) the
//     terms are accumulated in increasing k, exactly Σ_k A[i,k]·B[k,j].
//
// Behavior highlights:
//   - Not commutative in general.
//   - No zero-skipping: IEEE specials (NaN, ±Inf) propagate as in the naive sum.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (dimension mismatch).
//
// Complexity:
//   - Time Θ(n³), Space O(n²).
func Mul[T Number](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateSameDimension(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := &Square[T]{n: n, data: make([]T, len(a.data))}
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// a.data layout: i*n + k; b.data layout: k*n + j.
	for i = 0; i < n; i++ {
		rowOffsetA = i * n
		rowOffsetR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * n
			for j = 0; j < n; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Add returns m + other. See the package-level Add.
func (m *Square[T]) Add(other *Square[T]) (*Square[T], error) { return Add(m, other) }

// Mul returns m × other. See the package-level Mul.
func (m *Square[T]) Mul(other *Square[T]) (*Square[T], error) { return Mul(m, other) }
