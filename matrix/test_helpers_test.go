// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// testSizes covers the degenerate 1×1 case plus odd and even dimensions.
var testSizes = []int{1, 2, 3, 4, 5, 8}

// MustSquare ALLOCATES an n×n zero *Square or fails the test.
func MustSquare[T matrix.Number](t testing.TB, n int) *matrix.Square[T] {
	t.Helper()
	m, err := matrix.NewSquare[T](n)
	if err != nil {
		t.Fatalf("NewSquare(%d): %v", n, err)
	}

	return m
}

// FromRows BUILDS a *Square from literal rows or fails the test.
func FromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Square[T] {
	t.Helper()
	m, err := matrix.NewSquareFromRows(rows)
	if err != nil {
		t.Fatalf("NewSquareFromRows: %v", err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Square[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandInts RETURNS an n×n int64 Square with deterministic values in [-50,50).
func RandInts(t testing.TB, n int, seed int64) *matrix.Square[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustSquare[int64](t, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.UpdateElement(i, j, rng.Int63n(100)-50); err != nil {
				t.Fatalf("UpdateElement(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandFloats RETURNS an n×n float64 Square with deterministic U(-1,1) values.
func RandFloats(t testing.TB, n int, seed int64) *matrix.Square[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustSquare[float64](t, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.UpdateElement(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("UpdateElement(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// flatten RETURNS m's cells in row-major order.
func flatten[T matrix.Number](m *matrix.Square[T]) []T {
	out := make([]T, 0, m.Dimension()*m.Dimension())
	for _, row := range m.Rows() {
		out = append(out, row...)
	}

	return out
}
