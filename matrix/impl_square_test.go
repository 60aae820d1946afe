// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Square container.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewSquareInvalidDimensions ensures that NewSquare rejects non-positive dimensions.
func TestNewSquareInvalidDimensions(t *testing.T) {
	for _, n := range []int{0, -1, -42} {
		m, err := matrix.NewSquare[int](n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "n=%d", n)
		require.Nil(t, m)
	}
}

// TestNewSquareZeroFilled verifies the dimension and the zero initial state.
func TestNewSquareZeroFilled(t *testing.T) {
	m := MustSquare[float64](t, 3)
	require.Equal(t, 3, m.Dimension())
	require.Equal(t, make([]float64, 9), flatten(m))
}

// TestAtOutOfRange checks both sides of every bound for At.
func TestAtOutOfRange(t *testing.T) {
	for _, n := range testSizes {
		m := MustSquare[int](t, n)
		cases := [][2]int{{-1, 0}, {n, 0}, {0, -1}, {0, n}, {n, n}}
		for _, c := range cases {
			_, err := m.At(c[0], c[1])
			require.ErrorIs(t, err, matrix.ErrOutOfRange, "n=%d at=%v", n, c)
		}
	}
}

// TestUpdateElementRoundTrip validates UpdateElement followed by At.
func TestUpdateElementRoundTrip(t *testing.T) {
	m := MustSquare[float64](t, 2)
	require.NoError(t, m.UpdateElement(1, 0, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 0))
	require.Equal(t, []float64{0, 0, 7.89, 0}, flatten(m))
}

// TestUpdateElementOutOfRangeIsNoOp ensures a rejected update leaves every cell intact.
func TestUpdateElementOutOfRangeIsNoOp(t *testing.T) {
	m := FromRows(t, [][]int{{1, 2}, {3, 4}})
	before := m.Clone()

	for _, c := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {5, -5}} {
		err := m.UpdateElement(c[0], c[1], 99)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.True(t, matrix.Equal(before, m), "matrix changed after UpdateElement%v", c)
	}
}

// TestNewSquareFromRows covers the happy path and ragged input.
func TestNewSquareFromRows(t *testing.T) {
	m := FromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.Equal(t, 3, m.Dimension())
	require.Equal(t, 6, MustAt(t, m, 1, 2))

	_, err := matrix.NewSquareFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewSquareFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewSquareFromRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewSquareFromRowsCopies ensures the source rows are not aliased.
func TestNewSquareFromRowsCopies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := FromRows(t, rows)
	rows[0][0] = 100
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	require.True(t, matrix.Equal(a, b))

	require.NoError(t, b.UpdateElement(0, 0, 3.0))
	require.Equal(t, 1.0, MustAt(t, a, 0, 0)) // original unchanged
	require.Equal(t, 3.0, MustAt(t, b, 0, 0)) // clone reflects new value

	require.NoError(t, a.SwapRows(0, 1))
	require.Equal(t, 3.0, MustAt(t, b, 0, 0)) // clone unaffected by swaps on the original
}

// TestCopyFrom covers copy assignment between different dimensions.
func TestCopyFrom(t *testing.T) {
	dst := FromRows(t, [][]int{{1, 2}, {3, 4}})
	src := FromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, 3, dst.Dimension())
	require.True(t, matrix.Equal(src, dst))

	// Independence in both directions.
	require.NoError(t, dst.UpdateElement(2, 2, -1))
	require.Equal(t, 9, MustAt(t, src, 2, 2))
	require.NoError(t, src.UpdateElement(0, 0, -7))
	require.Equal(t, 1, MustAt(t, dst, 0, 0))

	// Shrinking reuses the buffer but must still copy only the source cells.
	small := FromRows(t, [][]int{{5}})
	require.NoError(t, dst.CopyFrom(small))
	require.Equal(t, 1, dst.Dimension())
	require.Equal(t, [][]int{{5}}, dst.Rows())
}

// TestCopyFromSelf ensures self-assignment keeps content and storage.
func TestCopyFromSelf(t *testing.T) {
	m := FromRows(t, [][]int{{1, 2}, {3, 4}})
	before := m.Clone()
	require.NoError(t, m.CopyFrom(m))
	require.True(t, matrix.Equal(before, m))
}

// TestCopyFromNil rejects a nil source and leaves the target intact.
func TestCopyFromNil(t *testing.T) {
	m := FromRows(t, [][]int{{1, 2}, {3, 4}})
	require.ErrorIs(t, m.CopyFrom(nil), matrix.ErrNilMatrix)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows())
}

// TestEqual covers dimension and nil handling.
func TestEqual(t *testing.T) {
	a := FromRows(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, FromRows(t, [][]int{{1, 2}, {3, 5}})))
	require.False(t, matrix.Equal(a, FromRows(t, [][]int{{1}})))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[int](nil, nil))
}

// TestEqual_NaN keeps copies of matrices holding NaN equal to their source.
func TestEqual_NaN(t *testing.T) {
	a := FromRows(t, [][]float64{{math.NaN(), 1}, {2, 3}})
	require.True(t, matrix.Equal(a, a.Clone()))

	b, err := matrix.NewSquare[float64](1)
	require.NoError(t, err)
	require.NoError(t, b.CopyFrom(a))
	require.True(t, matrix.Equal(a, b))

	require.False(t, matrix.Equal(a, FromRows(t, [][]float64{{0, 1}, {2, 3}})))
	require.False(t, matrix.Equal(FromRows(t, [][]float64{{0, 1}, {2, 3}}), a))
}

// TestRowsSnapshot ensures Rows() returns an independent copy.
func TestRowsSnapshot(t *testing.T) {
	m := FromRows(t, [][]int{{1, 2}, {3, 4}})
	rows := m.Rows()
	rows[1][1] = 40
	require.Equal(t, 4, MustAt(t, m, 1, 1))
}

// TestIdentityAndFilled checks the convenience constructors.
func TestIdentityAndFilled(t *testing.T) {
	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Rows())

	ones, err := matrix.NewFilled[float64](2, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1}, {1, 1}}, ones.Rows())

	like, err := matrix.IdentityLike(ones)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, like.Rows())

	_, err = matrix.IdentityLike[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewIdentity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
