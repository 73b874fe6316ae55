// SPDX-License-Identifier: MIT

// Package matrix - solvability classifier & Gaussian elimination solver.
//
// Classification of A·x = c (A is m×n, len(c) == m), with Ac = [A | c]:
//   - A not square: rank(A) != rank(Ac) → NoSolution;
//     rank(A) == rank(Ac) == n → OneSolution; otherwise InfiniteSolutions.
//   - A square: det(A) != 0 → OneSolution; otherwise equal ranks →
//     InfiniteSolutions, different ranks → NoSolution.
//
// Solving (only for OneSolution systems):
//   - Stage 1 (order): per column k, take the first unused row with a nonzero
//     entry in column k; unused rows follow in their original order.
//   - Stage 2 (float): convert rows and constants to float64.
//   - Stage 3 (forward): per pivot column k, rotate zero-pivot rows to the end
//     of the working set, normalize the pivot row, eliminate column k below it.
//   - Stage 4 (backward): eliminate column k above the diagonal, k = n-1..0.
//   - The leading n×n block is then the identity and the first n constants
//     are the solution.
//
// Notes:
//   - Pivoting avoids zeros only; there is no magnitude-based pivot choice.
//   - Rank and determinant costs dominate for n ≥ 4 (see impl_rank.go).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mathol/basic"
)

// IsSolvable classifies the linear system a·x = c.
//
// Errors:
//   - ErrNilMatrix, ErrLengthMismatch (len(c) != Rows).
//   - ErrNaNInf when c holds a non-finite value under the numeric policy.
//   - ErrRankUndefined for a non-square system without columns.
//
// Complexity: dominated by Det/Rank of a and of the augmented matrix.
func IsSolvable[T basic.Number](a *Dense[T], c []T) (Solvability, error) {
	if err := ValidateNotNil(a); err != nil {
		return NoSolution, matrixErrorf(opIsSolvable, err)
	}
	if err := ValidateVecLen(c, a.r); err != nil {
		return NoSolution, matrixErrorf(opIsSolvable, fmt.Errorf("constants must have %d entries, got %d: %w", a.r, len(c), err))
	}

	ac := a.Clone()
	if err := ac.AppendCol(c); err != nil {
		return NoSolution, matrixErrorf(opIsSolvable, err)
	}

	if a.IsSquare() && a.det() != 0 {
		return OneSolution, nil
	}

	rA, err := a.Rank()
	if err != nil {
		return NoSolution, matrixErrorf(opIsSolvable, err)
	}
	rAc, err := ac.Rank()
	if err != nil {
		return NoSolution, matrixErrorf(opIsSolvable, err)
	}

	switch {
	case rA != rAc:
		return NoSolution, nil
	case !a.IsSquare() && rA == a.c:
		return OneSolution, nil
	default:
		return InfiniteSolutions, nil
	}
}

// Solve solves a·x = c by Gaussian elimination in float64.
// It returns the reduced row set (Rows×Cols; its leading Cols×Cols block is the
// identity) and the solution x with len(x) == Cols. a and c are not mutated.
//
// Implementation:
//   - Stage 1: IsSolvable(a, c); anything but OneSolution → ErrUnsolvable.
//   - Stage 2: Order rows by shuffle and convert rows and constants to float64.
//   - Stage 3: Forward elimination; zero pivots rotate their row to the end.
//   - Stage 4: Back elimination above the diagonal, k = Cols-1..0.
//   - Stage 5: Self-check: leading block ≈ identity, rows below ≈ zero, and
//     every constant of a row at or below Cols ≈ zero.
//
// Behavior highlights:
//   - Pivoting avoids zeros only; there is no magnitude-based pivot choice.
//   - Equations beyond Cols are never dropped silently: a leftover constant
//     means an equation the returned x would violate.
//
// Inputs:
//   - a: m×n coefficients of any basic.Number scalar.
//   - c: m constants.
//   - opts: WithPivotEpsilon (|pivot| ≤ eps counts as zero; default exact zero),
//     WithEpsilon (tolerance of the Stage 5 self-check).
//
// Returns:
//   - *Dense[float64]: the reduced row set.
//   - []float64: x, len(x) == Cols.
//
// Errors:
//   - Any IsSolvable error (ErrNilMatrix, ErrLengthMismatch, ErrNaNInf, ErrRankUndefined).
//   - ErrUnsolvable when the system is not OneSolution, or when the Stage 5
//     self-check fails.
//
// Determinism:
//   - Fixed row order and loop orders; identical inputs give identical bits.
//
// Complexity:
//   - Time O(m·n²) for the elimination plus the IsSolvable cost, Space O(m·n).
func Solve[T basic.Number](a *Dense[T], c []T, opts ...Option) (*Dense[float64], []float64, error) {
	kind, err := IsSolvable(a, c)
	if err != nil {
		return nil, nil, matrixErrorf(opSolve, err)
	}
	if kind != OneSolution {
		return nil, nil, matrixErrorf(opSolve, fmt.Errorf("%s: %w", kind, ErrUnsolvable))
	}
	o := gatherOptions(opts...)

	rows, cols := a.r, a.c
	m, s := orderedRows(a, c)

	// Forward elimination.
	var i, k, tries int
	for k = 0; k < cols; k++ {
		for tries = 0; isZeroPivot(m[k][k], o.pivotEps) && tries < rows-k-1; tries++ {
			rotateToEnd(m, s, k)
		}
		s[k] = reduceRow(m[k], k, s[k], o.pivotEps)
		for i = k + 1; i < rows; i++ {
			s[i] = addGaussian(m[k], m[i], k, s[k], s[i])
		}
	}

	// Back elimination.
	for k = cols - 1; k >= 0; k-- {
		for i = k - 1; i >= 0; i-- {
			s[i] = addGaussian(m[k], m[i], k, s[k], s[i])
		}
	}

	reduced := &Dense[float64]{r: rows, c: cols, data: make([]float64, 0, rows*cols), validateNaNInf: o.validateNaNInf}
	for i = 0; i < rows; i++ {
		reduced.data = append(reduced.data, m[i]...)
	}
	if !leadingIdentity(reduced, o.eps) {
		return nil, nil, matrixErrorf(opSolve, fmt.Errorf("elimination did not reach the identity: %w", ErrUnsolvable))
	}
	for i = cols; i < rows; i++ {
		if math.Abs(s[i]) > o.eps {
			return nil, nil, matrixErrorf(opSolve, fmt.Errorf("equation %d left with constant %g: %w", i, s[i], ErrUnsolvable))
		}
	}

	x := make([]float64, cols)
	copy(x, s[:cols])

	return reduced, x, nil
}

// shuffle returns a row order that places, for each column k in turn, the
// first not-yet-chosen row with a nonzero entry in column k. Rows never chosen
// (all-zero rows) follow in their original order.
// Complexity: O(r*c).
func shuffle[T basic.Number](a *Dense[T]) []int {
	chosen := make([]bool, a.r)
	order := make([]int, 0, a.r)
	var i, k int
	for k = 0; k < a.c; k++ {
		for i = 0; i < a.r; i++ {
			if !chosen[i] && a.data[i*a.c+k] != 0 {
				chosen[i] = true
				order = append(order, i)
				break
			}
		}
	}
	for i = 0; i < a.r; i++ {
		if !chosen[i] {
			order = append(order, i)
		}
	}

	return order
}

// orderedRows builds the float64 working set (rows and paired constants) in
// shuffle order.
func orderedRows[T basic.Number](a *Dense[T], c []T) ([][]float64, []float64) {
	order := shuffle(a)
	m := make([][]float64, len(order))
	s := make([]float64, len(order))
	for dst, src := range order {
		row := make([]float64, a.c)
		for j := 0; j < a.c; j++ {
			row[j] = basic.ToFloat64(a.data[src*a.c+j])
		}
		m[dst] = row
		s[dst] = basic.ToFloat64(c[src])
	}

	return m, s
}

// rotateToEnd moves row k (and its constant) behind the last row, shifting
// rows k+1.. up by one.
func rotateToEnd(m [][]float64, s []float64, k int) {
	row, v := m[k], s[k]
	copy(m[k:], m[k+1:])
	copy(s[k:], s[k+1:])
	m[len(m)-1], s[len(s)-1] = row, v
}

func isZeroPivot(p, eps float64) bool {
	return math.Abs(p) <= eps
}

// reduceRow divides row (in place) and its constant c by the pivot row[k].
// A zero pivot leaves both untouched.
// Returns the new constant.
func reduceRow(row []float64, k int, c, eps float64) float64 {
	p := row[k]
	if isZeroPivot(p, eps) {
		return c
	}
	for j := range row {
		row[j] /= p
	}

	return c / p
}

// addGaussian replaces target (in place) with (-target[k])·pivot + target and
// returns the matching constant (-target[k])·a + b, where a pairs with pivot
// and b with target. Both rows have the same length by construction.
func addGaussian(pivot, target []float64, k int, a, b float64) float64 {
	f := -target[k]
	for j := range target {
		target[j] += f * pivot[j]
	}

	return f*a + b
}

// leadingIdentity reports whether the leading Cols×Cols block of m is the
// identity within eps and every row below it is zero within eps.
func leadingIdentity(m *Dense[float64], eps float64) bool {
	var i, j int
	var want float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(m.data[i*m.c+j]-want) > eps {
				return false
			}
		}
	}

	return true
}
