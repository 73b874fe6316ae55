// SPDX-License-Identifier: MIT

// Package matrix - determinant & minor engine.
//
// Purpose:
//   - Extract (n-1)×(n-1) submatrices (minors) without mutating the source.
//   - Compute determinants over any basic.Number scalar with exact integer
//     arithmetic when T is an integer kind.
//
// Algorithm:
//   - n == 0: 1 (empty product).
//   - n == 1: the single element.
//   - n == 2: main diagonal product minus side diagonal product.
//   - n == 3: rule of Sarrus, i.e. Σ_k main(k) - Σ_k side(k) over wrapped diagonals.
//   - n >= 4: Laplace expansion along the last column, recursing into minors
//     until the closed forms above apply.
//
// Complexity:
//   - Det is O(n!) for n >= 4 (no memoization). Intended for small matrices;
//     callers with large inputs should factorize instead.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mathol/basic"
)

// Submatrix returns a (Rows-1)×(Cols-1) copy with row and col removed.
// The relative order of the remaining rows and columns is preserved and the
// receiver is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (row or col outside the matrix).
//
// Complexity: O(r*c).
func (m *Dense[T]) Submatrix(row, col int) (*Dense[T], error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return m.Induced(without(m.r, row), without(m.c, col))
}

// without returns 0..n-1 with skip removed.
func without(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// minor is the unchecked Submatrix used by Det and Inverse, where row/col
// are valid by construction.
func (m *Dense[T]) minor(row, col int) *Dense[T] {
	nr, nc := m.r-1, m.c-1
	out := &Dense[T]{r: nr, c: nc, data: make([]T, 0, nr*nc), validateNaNInf: m.validateNaNInf}
	var i, k int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for k = 0; k < m.c; k++ {
			if k == col {
				continue
			}
			out.data = append(out.data, m.data[i*m.c+k])
		}
	}

	return out
}

// MainDiagonalProduct returns Π m[i, (k+i) mod Cols] for i in 0..Rows-1,
// i.e. the product along the wrapped diagonal starting at column k.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (k outside 0..Cols-1).
//
// Complexity: O(r).
func (m *Dense[T]) MainDiagonalProduct(k int) (T, error) {
	if err := m.validateDiagonalStart(k); err != nil {
		return 0, err
	}

	return m.mainDiagonal(k), nil
}

// SideDiagonalProduct returns the product along the wrapped anti-diagonal that
// starts at (Rows-1, k) and walks upward while the column advances.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (k outside 0..Cols-1).
//
// Complexity: O(r).
func (m *Dense[T]) SideDiagonalProduct(k int) (T, error) {
	if err := m.validateDiagonalStart(k); err != nil {
		return 0, err
	}

	return m.sideDiagonal(k), nil
}

func (m *Dense[T]) validateDiagonalStart(k int) error {
	if m == nil {
		return matrixErrorf(opDet, ErrNilMatrix)
	}
	if k < 0 || k >= m.c {
		return matrixErrorf(opDet, fmt.Errorf("diagonal start %d: %w", k, ErrOutOfRange))
	}

	return nil
}

func (m *Dense[T]) mainDiagonal(k int) T {
	var prod T = 1
	for i := 0; i < m.r; i++ {
		prod *= m.data[i*m.c+(k+i)%m.c]
	}

	return prod
}

func (m *Dense[T]) sideDiagonal(k int) T {
	var prod T = 1
	col := k
	for i := m.r - 1; i >= 0; i-- {
		prod *= m.data[i*m.c+col%m.c]
		col++
	}

	return prod
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil and shape guard).
//   - Stage 2: n = 0 → 1; n = 1 → the element; n = 2, 3 → diagonal products.
//   - Stage 3: n ≥ 4 → Laplace expansion along the last column, recursing on minors.
//
// Behavior highlights:
//   - Zero entries of the expansion column skip their minor entirely.
//   - The receiver is never mutated; minors are fresh copies.
//
// Inputs:
//   - m: n×n matrix of any basic.Number scalar.
//
// Returns:
//   - T: the determinant in the receiver's scalar type.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed expansion column and row order; identical inputs give identical bits.
//
// Complexity:
//   - O(1) for n ≤ 3, O(n!) time and O(n²) space per recursion level otherwise.
//
// Notes:
//   - Integer scalars are computed exactly (modulo overflow of T).
//   - Unsigned scalars yield the determinant modulo 2^bits.
//
// AI-Hints:
//   - Convert[float64](m).Det() avoids integer overflow at the cost of exactness.
//   - Keep n small; the factorial growth dominates past n ≈ 10.
func (m *Dense[T]) Det() (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det assumes a square receiver; recursion depth is bounded by n-3.
func (m *Dense[T]) det() T {
	n := m.r
	switch n {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.mainDiagonal(0) - m.sideDiagonal(0)
	case 3:
		var main, side T
		for k := 0; k < n; k++ {
			main += m.mainDiagonal(k)
			side += m.sideDiagonal(k)
		}
		return main - side
	}

	// Laplace expansion along the last column.
	var sum, a T
	last := n - 1
	for i := 0; i < n; i++ {
		a = m.data[i*n+last]
		if a == 0 {
			continue // zero entry: the whole term vanishes
		}
		sum += a * basic.MinusOnePow[T](i+last) * m.minor(i, last).det()
	}

	return sum
}
