// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mathol/basic"
	"github.com/katalvlaran/mathol/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// floatTol is the absolute tolerance for float comparisons in tests.
const floatTol = 1e-9

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T basic.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a matrix from rows or fails the test.
func MustFromRows[T basic.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T basic.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts both matrices have the same shape and all elements
// agree within tol.
func RequireClose(t testing.TB, want, got *matrix.Dense[float64], tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant:\n%vgot:\n%v", want, got)
}

// RequireIdentity asserts m is square and within tol of the identity.
func RequireIdentity(t testing.TB, m *matrix.Dense[float64], tol float64) {
	t.Helper()
	id, err := matrix.IdentityLike(m)
	require.NoError(t, err)
	RequireClose(t, id, m, tol)
}

// randIntRows returns an n×n matrix of integers in [-5, 5] from a fixed seed.
func randIntRows(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(11) - 5
		}
	}

	return rows
}

// toGonum copies m into a gonum dense matrix used as a reference oracle.
func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Data())
}

// gonumDet is the reference determinant (LU based).
func gonumDet(m *matrix.Dense[float64]) float64 {
	return mat.Det(toGonum(m))
}

// nearlyEqual compares with a tolerance relative to the magnitude of want.
func nearlyEqual(want, got float64) bool {
	return math.Abs(want-got) <= floatTol*math.Max(1, math.Abs(want))
}
