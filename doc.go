// Package sqmatrix is a small toolkit for square matrices: generic N×N
// containers with element access, row/column permutation, arithmetic and
// diagonal sums, plus the text codec and the command-line walk-through
// built on top of them.
//
// 🚀 What is in sqmatrix?
//
//	• matrix.Square[T]: flat row-major N×N storage for any integer or float type
//	• Soft edits: UpdateElement, SwapRows, SwapColumns report bad indices and change nothing
//	• Arithmetic: Add, Mul (naive triple loop), Sum / Product helpers
//	• Diagonals: main, secondary and combined sums (centre counted once)
//	• Codec: whitespace-token parsing and fixed-width rendering
//
// ✨ Why sqmatrix?
//
//   - Generic: one implementation for int64, float64 and friends
//   - Predictable: every failure is a sentinel error, matched with errors.Is
//   - Pure Go core: the matrix package needs nothing beyond x/exp/constraints
//
// Everything is organized under four packages and one command:
//
//	matrix:       Square[T], arithmetic, diagonals, permutations, codec
//	loader:       input file header ("N kind"), token collection, typed decoding
//	session:      the print / prompt / mutate sequence over a loaded pair
//	config:       YAML configuration (render width, precision, logging)
//	cmd/sqmatrix: CLI flags, logger, wiring
//
// Quick start:
//
//	go install github.com/katalvlaran/sqmatrix/cmd/sqmatrix@latest
//	printf '2 0\n1 2 3 4\n5 6 7 8\n0 1 0 1 1 1 9\n' | sqmatrix -f -
package sqmatrix
