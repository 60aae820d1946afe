// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container and the codec.
package matrix

import "golang.org/x/exp/constraints"

// Number is the element constraint of Square: any integer or floating-point
// kind. Both support +, * and conversion from untyped zero, which is all the
// arithmetic and diagonal kernels need.
type Number interface {
	constraints.Integer | constraints.Float
}

// TokenSource yields whitespace-free tokens one at a time.
// Next returns ErrShortInput (possibly wrapped) once the source is exhausted.
// *Tokenizer is the stream implementation; callers may supply their own
// (e.g. a pre-split slice).
type TokenSource interface {
	Next() (string, error)
}
