// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the determinant engine.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mathol/matrix"
	"github.com/stretchr/testify/require"
)

// TestDet_KnownValues covers every closed form and the Laplace expansion.
func TestDet_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want int
	}{
		{"0x0", [][]int{}, 1},
		{"1x1", [][]int{{-7}}, -7},
		{"2x2", [][]int{{4, 7}, {-3, 8}}, 53},
		{"3x3", [][]int{{1, -2, 3}, {2, 0, 1}, {6, 5, 1}}, 17},
		{"4x4", [][]int{{1, 2, 0, -1}, {4, 0, -3, 2}, {9, 0, 0, 4}, {8, 1, 3, 1}}, 87},
		{"5x5", [][]int{
			{2, 1, 4, 3, 1},
			{-1, 2, 1, -1, 0},
			{3, 4, -1, -2, 2},
			{4, 3, 2, 1, 1},
			{1, 0, 0, 2, 3},
		}, -74},
		{"singular 3x3", [][]int{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MustFromRows(t, tc.rows).Det()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestDet_Float agrees with the integer result for the same entries.
func TestDet_Float(t *testing.T) {
	m := MustFromRows(t, [][]float64{{4, 7}, {-3, 8}})
	got, err := m.Det()
	require.NoError(t, err)
	require.InDelta(t, 53.0, got, floatTol)
}

// TestDet_AgainstGonum cross-checks the Laplace expansion with an LU determinant.
func TestDet_AgainstGonum(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				m := MustFromRows(t, randIntRows(n, seed*int64(n)))
				got, err := m.Det()
				require.NoError(t, err)

				want := gonumDet(matrix.Convert[float64](m))
				require.Truef(t, nearlyEqual(want, float64(got)), "det=%d, gonum=%v", got, want)
			})
		}
	}
}

func TestDet_NonSquare(t *testing.T) {
	_, err := MustDense[int](t, 2, 3).Det()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	var nilM *matrix.Dense[int]
	_, err = nilM.Det()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSubmatrix removes one row and column and never mutates the source.
func TestSubmatrix(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, -2, 3}, {2, 0, 1}, {6, 5, 1}})
	before := m.Clone()

	sub, err := m.Submatrix(1, 1)
	require.NoError(t, err)
	require.True(t, sub.Equal(MustFromRows(t, [][]int{{1, 3}, {6, 1}})))

	sub, err = m.Submatrix(0, 2)
	require.NoError(t, err)
	require.True(t, sub.Equal(MustFromRows(t, [][]int{{2, 0}, {6, 5}})))
	require.True(t, m.Equal(before))

	rect := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	sub, err = rect.Submatrix(1, 0)
	require.NoError(t, err)
	require.True(t, sub.Equal(MustFromRows(t, [][]int{{2, 3}})))

	_, err = m.Submatrix(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Submatrix(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDiagonalProducts checks the wrapped diagonals behind the rule of Sarrus.
func TestDiagonalProducts(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, -2, 3}, {2, 0, 1}, {6, 5, 1}})

	var mains, sides []int
	for k := 0; k < 3; k++ {
		mv, err := m.MainDiagonalProduct(k)
		require.NoError(t, err)
		sv, err := m.SideDiagonalProduct(k)
		require.NoError(t, err)
		mains = append(mains, mv)
		sides = append(sides, sv)
	}
	require.Equal(t, []int{0, -12, 30}, mains)
	require.Equal(t, []int{0, 5, -4}, sides)

	_, err := m.MainDiagonalProduct(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SideDiagonalProduct(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
