// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized n×n Square.
// It is a thin alias of NewSquare with an intention-revealing name.
func NewZeros[T Number](n int) (*Square[T], error) {
	return NewSquare[T](n)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Square[T], error) {
	id, err := NewSquare[T](n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for off := 0; off < len(id.data); off += n + 1 { // stride n+1 = next diagonal cell
		id.data[off] = 1
	}

	return id, nil
}

// NewFilled returns an n×n Square with every cell set to v.
// Complexity: O(n²).
func NewFilled[T Number](n int, v T) (*Square[T], error) {
	m, err := NewSquare[T](n)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// IdentityLike returns I with the same dimension as m.
func IdentityLike[T Number](m *Square[T]) (*Square[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.n)
}

// ---------- Arithmetic ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(n²).
func Sum[T Number](a, b *Square[T]) (*Square[T], error) { return Add(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: Θ(n³).
func Product[T Number](a, b *Square[T]) (*Square[T], error) { return Mul(a, b) }
