// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with fmt.Errorf("Op: %w", ErrX)
// so callers still match with errors.Is.
//
// ERROR TIERS:
//   - hard: NewSquare with n<=0, At out of range, arithmetic on nil/mismatched operands.
//   - soft: UpdateElement/SwapRows/SwapColumns out of range; the matrix is left
//     unchanged and the caller decides whether to log and continue.

var (
	// ErrInvalidDimensions indicates that a requested dimension is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimension must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different dimensions, or a
	// ragged row set handed to NewSquareFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Square was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrShortInput indicates that a token stream ended before n*n elements were read.
	ErrShortInput = errors.New("matrix: not enough tokens")

	// ErrBadLiteral indicates a token that is not a valid literal of the element type.
	ErrBadLiteral = errors.New("matrix: invalid element literal")
)
