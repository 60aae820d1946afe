// SPDX-License-Identifier: MIT

// Package matrix - diagonal reductions.
//
// Main diagonal: cells (i, i). Secondary (anti-) diagonal: cells (i, n-1-i).
// For odd n both diagonals meet in the centre cell (n/2, n/2); DiagonalSum
// counts it once, so it is the sum over the union of both diagonals.

package matrix

// MainDiagonalSum returns Σ m[i,i] for i in [0,n).
// Complexity: O(n).
func (m *Square[T]) MainDiagonalSum() T {
	var sum T
	// stride n+1 walks the main diagonal of the flat buffer
	for off := 0; off < len(m.data); off += m.n + 1 {
		sum += m.data[off]
	}

	return sum
}

// SecondaryDiagonalSum returns Σ m[i,n-1-i] for i in [0,n).
// Complexity: O(n).
func (m *Square[T]) SecondaryDiagonalSum() T {
	var sum T
	for i := 0; i < m.n; i++ {
		sum += m.data[i*m.n+(m.n-1-i)]
	}

	return sum
}

// DiagonalSum returns the sum of every cell on the main or the secondary
// diagonal, each cell counted exactly once.
// Implementation:
//   - Stage 1: main + secondary.
//   - Stage 2: odd n only, subtract the shared centre cell.
//
// Complexity: O(n).
func (m *Square[T]) DiagonalSum() T {
	sum := m.MainDiagonalSum() + m.SecondaryDiagonalSum()
	if m.n%2 == 1 {
		centre := m.n / 2
		sum -= m.data[centre*m.n+centre]
	}

	return sum
}
