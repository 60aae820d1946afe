// Package matrix provides Square, a generic N×N numeric container with value
// semantics.
//
// The matrix package provides:
//
//   - Square[T] over any integer or floating-point kind, stored as one
//     contiguous row-major buffer (cell (i,j) at i*n + j).
//   - Bounds-checked reads (At) that fail hard, and in-place mutations
//     (UpdateElement, SwapRows, SwapColumns) that fail soft: they return
//     ErrOutOfRange and leave the matrix untouched.
//   - Add and Mul producing fresh, independently owned results.
//   - Main, secondary and combined diagonal sums (the centre cell of an odd
//     matrix is counted once).
//   - A whitespace token codec (Tokenizer, Decode) and a fixed-width
//     renderer (Render, String).
//
// Copies never alias: Clone and CopyFrom always produce an independent buffer.
//
// See the examples in this package for usage patterns.
package matrix
