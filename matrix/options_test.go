// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathol/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultPivotEpsilon, o.PivotEpsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestNewMatrixOptions_LastWins ensures each Option toggles exactly its field and the last one wins.
func TestNewMatrixOptions_LastWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), matrix.WithPivotEpsilon(1e-6), nil)
	require.Equal(t, 1e-3, o.Epsilon())
	require.Equal(t, 1e-6, o.PivotEpsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestOptions_PanicOnInvalid checks the documented panic messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(eps) })
		require.PanicsWithValue(t, matrix.PanicPivotEpsilonInvalid_TestOnly, func() { matrix.WithPivotEpsilon(eps) })
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
