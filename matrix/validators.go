// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/dimension checks here.
//  - Return sentinel errors wrapped with the validator tag; facades add the op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Square[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDimension – Ensures a and b are non-nil and share a dimension.
//
// Sequence: NotNil(a) → NotNil(b) → dimension.
// Return: nil, wrapped ErrNilMatrix, or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameDimension[T Number](a, b *Square[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameDimension: %d vs %d", a.n, b.n),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validatePair checks two row or column indices against m's dimension.
// It returns the bare ErrOutOfRange so the caller can wrap with its own tag.
func (m *Square[T]) validatePair(i, j int) error {
	if !m.inRange(i) || !m.inRange(j) {
		return ErrOutOfRange
	}

	return nil
}
