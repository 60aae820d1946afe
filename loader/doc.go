// Package loader reads the sqmatrix input format: a header naming the
// dimension N and the element kind, followed by two N×N matrices as
// whitespace-separated literals in row-major order.
//
//	N kind
//	<N*N literals, matrix 1>
//	<N*N literals, matrix 2>
//
// kind 0 selects integer elements (int64), kind 1 floating-point (float64).
// Tokens after the second matrix are ignored.
//
// Load performs the whole read pass and closes the file before returning, so
// callers never hold the file while computing. Decoding into typed matrices
// is a separate, generic step (Pair) chosen by the header's Kind.
package loader
