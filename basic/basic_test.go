// SPDX-License-Identifier: MIT

package basic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathol/basic"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	cases := []struct {
		name string
		base int
		exp  int
		want int
	}{
		{"zero exponent", 7, 0, 1},
		{"zero base zero exponent", 0, 0, 1},
		{"square", 3, 2, 9},
		{"negative base odd", -2, 3, -8},
		{"negative base even", -2, 4, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, basic.Pow(tc.base, tc.exp))
		})
	}

	require.InDelta(t, 0.125, basic.Pow(0.5, 3), 1e-15)
	require.Panics(t, func() { basic.Pow(2, -1) })
}

func TestMinusOnePow(t *testing.T) {
	require.Equal(t, 1, basic.MinusOnePow[int](0))
	require.Equal(t, -1, basic.MinusOnePow[int](3))
	require.Equal(t, 1.0, basic.MinusOnePow[float64](4))

	// Unsigned kinds wrap: (-1)^1 is the all-ones value, (-1)^2 is 1.
	require.Equal(t, uint8(math.MaxUint8), basic.MinusOnePow[uint8](1))
	require.Equal(t, uint8(1), basic.MinusOnePow[uint8](2))
}

func TestConversions(t *testing.T) {
	require.Equal(t, 3.0, basic.ToFloat64(int8(3)))
	require.Equal(t, 2.5, basic.ToFloat64(float32(2.5)))
	require.Equal(t, 2, basic.ToInt(2.9))
	require.Equal(t, -2, basic.ToInt(-2.9))
	require.Equal(t, 0, basic.ToInt(math.NaN()))
	require.Equal(t, 0, basic.ToInt(math.Inf(1)))

	require.True(t, basic.IsIntegral[int]())
	require.True(t, basic.IsIntegral[uint16]())
	require.False(t, basic.IsIntegral[float32]())
	require.False(t, basic.IsIntegral[float64]())

	require.True(t, basic.IsFinite(42))
	require.False(t, basic.IsFinite(math.Inf(-1)))
	require.False(t, basic.IsFinite(math.NaN()))
}

func TestAmount(t *testing.T) {
	require.Equal(t, 5, basic.Amount(-5))
	require.Equal(t, 5, basic.Amount(5))
	require.Equal(t, int8(0), basic.Amount(int8(0)))
	require.Equal(t, 1.5, basic.Amount(-1.5))
	require.False(t, math.Signbit(basic.Amount(math.Copysign(0, -1))))
}

func TestScalarProduct(t *testing.T) {
	got, err := basic.ScalarProduct([]int{1, 2, 3}, []int{4, -5, 6})
	require.NoError(t, err)
	require.Equal(t, 12, got)

	got, err = basic.ScalarProduct([]int{}, []int{})
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = basic.ScalarProduct([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, basic.ErrLengthMismatch)
}

func TestPythagoras(t *testing.T) {
	require.Equal(t, 5.0, basic.Pythagoras2D(3, 4))
	require.InDelta(t, 3.0, basic.Pythagoras3D(1.0, 2.0, 2.0), 1e-12)
}
