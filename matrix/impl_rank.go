// SPDX-License-Identifier: MIT

// Package matrix - rank by exhaustive minor search.
//
// Algorithm:
//   - p_max = min(Rows, Cols).
//   - For p = p_max down to 1, slide a p×p window over every (row, col)
//     start offset in row-major order; the first window with a nonzero
//     determinant fixes the rank at p.
//   - No nonzero window at any size → the matrix is all zero → rank 0.
//
// Notes:
//   - Only contiguous windows are tested; a nonzero minor built from
//     non-adjacent rows or columns is not considered.
//
// Complexity:
//   - O(Σ_p (r-p+1)(c-p+1)·cost(det_p)); det_p is O(p!) for p ≥ 4.

package matrix

// Rank returns the size of the largest contiguous square window with a
// nonzero determinant. A matrix whose elements are all zero has rank 0.
//
// Implementation:
//   - Stage 1: Nil guard; p_max = min(Rows, Cols), zero → ErrRankUndefined.
//   - Stage 2: For p = p_max..1, copy each p×p window into one scratch buffer
//     and test det != 0; the first hit returns p.
//   - Stage 3: No hit at any size → 0.
//
// Behavior highlights:
//   - Exact comparison with zero: no tolerance is applied to float determinants.
//   - The receiver is never mutated.
//
// Inputs:
//   - m: r×c matrix of any basic.Number scalar.
//
// Returns:
//   - int: rank in [0, min(r, c)].
//
// Errors:
//   - ErrNilMatrix.
//   - ErrRankUndefined for a matrix without elements (Rows == 0 or Cols == 0).
//
// Determinism:
//   - Windows are visited in row-major order of their top-left corner.
//
// Complexity:
//   - See package notes above; O(p²) scratch space.
//
// Notes:
//   - Non-contiguous minors are not searched, so a tall or wide matrix can
//     report less than its algebraic rank.
func (m *Dense[T]) Rank() (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	pMax := min(m.r, m.c)
	if pMax == 0 {
		return 0, matrixErrorf(opRank, ErrRankUndefined)
	}

	for p := pMax; p >= 1; p-- {
		if m.hasNonzeroWindow(p) {
			return p, nil
		}
	}

	return 0, nil
}

// hasNonzeroWindow reports whether any contiguous p×p window has det != 0.
// Windows are enumerated in row-major order of their top-left corner; one
// scratch matrix is reused for every window.
func (m *Dense[T]) hasNonzeroWindow(p int) bool {
	w := &Dense[T]{r: p, c: p, data: make([]T, p*p)}
	var i, k, row int
	for i = 0; i+p <= m.r; i++ {
		for k = 0; k+p <= m.c; k++ {
			for row = 0; row < p; row++ {
				copy(w.data[row*p:(row+1)*p], m.data[(i+row)*m.c+k:(i+row)*m.c+k+p])
			}
			if w.det() != 0 {
				return true
			}
		}
	}

	return false
}
