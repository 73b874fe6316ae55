// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the rank engine.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathol/matrix"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want int
	}{
		{"wide full rank", [][]int{{2, 3, 1}, {0, 4, 2}}, 2},
		{"identity", [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"dependent rows", [][]int{{1, 2}, {2, 4}}, 1},
		{"single element", [][]int{{5}}, 1},
		{"all zero", [][]int{{0, 0, 0}, {0, 0, 0}}, 0},
		{"tall", [][]int{{1, 1}, {1, -1}, {2, 0}}, 2},
		{"augmented consistent", [][]int{{1, -2, 1, 1}, {1, 1, -4, 8}}, 2},
		{"offset window", [][]int{{0, 0, 0}, {0, 1, 2}, {0, 3, 4}}, 2},
		{"last corner only", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 7}}, 1},
		{"wide offset window", [][]int{{0, 0, 1, 0}, {0, 0, 0, 1}}, 2},
		{"non-contiguous minor", [][]int{{1, 0}, {0, 0}, {0, 1}}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MustFromRows(t, tc.rows).Rank()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRank_Undefined(t *testing.T) {
	_, err := MustDense[int](t, 0, 3).Rank()
	require.ErrorIs(t, err, matrix.ErrRankUndefined)

	_, err = MustDense[float64](t, 0, 0).Rank()
	require.ErrorIs(t, err, matrix.ErrRankUndefined)

	var nilM *matrix.Dense[int]
	_, err = nilM.Rank()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRank_ReceiverUntouched checks the window search reads without mutating.
func TestRank_ReceiverUntouched(t *testing.T) {
	m := MustFromRows(t, [][]float64{{0, 0, 0}, {0, 1, 2}, {0, 3, 4}})
	before := m.Data()

	got, err := m.Rank()
	require.NoError(t, err)
	require.Equal(t, 2, got)
	require.Equal(t, before, m.Data())
}
