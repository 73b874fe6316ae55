// SPDX-License-Identifier: MIT

// Package matrix - inverse via the adjugate.
//
// Algorithm:
//   - det = Det(A); det == 0 → ErrSingular.
//   - For each (i,k): cofactor C[i,k] = (-1)^(i+k) · Det(minor(i,k)).
//   - inv[k,i] = C[i,k] / det, i.e. the adjugate transpose is written directly.
//
// Integer scalars:
//   - Division truncates in Go, so an integer inverse is exact only when every
//     cofactor is divisible by det. Inverse refuses to truncate and returns
//     ErrInexact instead; use Convert[float64](m).Inverse() for the real inverse.
//
// Complexity:
//   - n² minors, each O((n-1)!) → O(n²·(n-1)!). Small matrices only.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mathol/basic"
)

// Inverse returns A⁻¹ computed from cofactors. The receiver is not mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil and shape guard).
//   - Stage 2: det = Det(A); det == 0 → ErrSingular.
//   - Stage 3: For each (i,k): cof = (-1)^(i+k)·det(minor(i,k)); store cof/det
//     at the transposed position (k,i), which builds adj(A)/det.
//
// Behavior highlights:
//   - Integer division is checked: a truncated quotient aborts with ErrInexact.
//   - The result inherits the receiver's numeric policy.
//
// Inputs:
//   - m: n×n matrix of any basic.Number scalar.
//
// Returns:
//   - *Dense[T]: a new n×n matrix with A·A⁻¹ = I.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when Det() == 0.
//   - ErrInexact for integer T when a cofactor is not divisible by the determinant.
//
// Determinism:
//   - Row-major cofactor order; identical inputs give identical bits.
//
// Complexity:
//   - O(n²·(n-1)!) time, O(n²) space.
//
// AI-Hints:
//   - For integer input with a non-unit determinant, invert Convert[float64](m).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := m.det()
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	integral := basic.IsIntegral[T]()
	inv := &Dense[T]{r: n, c: n, data: make([]T, n*n), validateNaNInf: m.validateNaNInf}

	var (
		i, k   int
		cof, q T
	)
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			cof = basic.MinusOnePow[T](i+k) * m.minor(i, k).det()
			q = cof / det
			if integral && q*det != cof {
				return nil, matrixErrorf(opInverse, fmt.Errorf("cofactor (%d,%d)=%v, det=%v: %w", i, k, cof, det, ErrInexact))
			}
			inv.data[k*n+i] = q // transposed position: adjugate
		}
	}

	return inv, nil
}
