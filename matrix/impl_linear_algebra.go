// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic operations on Dense matrices:
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication, matrix-vector product, transpose and scalar conversion.
// All functions perform strict fail-fast validation and return fresh
// results; operands are never mutated.
//
// Purpose:
//   - Declare the canonical algebra kernels used across the package.
//   - Define operation tags and shared helpers for uniform error reporting.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mathol/basic"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opMatVec     = "MatVec"
	opTranspose  = "Transpose"
	opTrace      = "Trace"
	opSubmatrix  = "Submatrix"
	opDet        = "Det"
	opInverse    = "Inverse"
	opRank       = "Rank"
	opIsSolvable = "IsSolvable"
	opSolve      = "Solve"
	opAllClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b or out = a - b.
// Internal helper for Add/Sub to share validation and allocation.
// Complexity: O(r*c).
func addSub[T basic.Number](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data)), validateNaNInf: a.validateNaNInf}
	if subtract {
		for idx := range a.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range a.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add[T basic.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T basic.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Scale returns λ·m as a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T basic.Number](m *Dense[T], lambda T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), validateNaNInf: m.validateNaNInf}
	for idx, v := range m.data {
		res.data[idx] = v * lambda
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// The result has shape A.Rows × B.Cols; each entry is the dot product of a row
// of A and a column of B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loops with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T basic.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols), validateNaNInf: a.validateNaNInf}

	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x where len(x) == m.Cols().
//
// Errors:
//   - ErrNilMatrix (nil input), ErrLengthMismatch (len(x) != Cols).
//
// Complexity: Time O(r*c), Space O(r).
func MatVec[T basic.Number](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		// Row slice is shared, not copied; ScalarProduct only reads it.
		v, err := basic.ScalarProduct(m.data[i*m.c:(i+1)*m.c], x)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		y[i] = v
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T basic.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data)), validateNaNInf: m.validateNaNInf}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Convert returns a copy of m with every element converted to U.
// Integer targets truncate toward zero; the numeric policy is preserved.
// Returns nil for a nil input.
//
// Complexity: Time O(r*c), Space O(r*c).
func Convert[U, T basic.Number](m *Dense[T]) *Dense[U] {
	if m == nil {
		return nil
	}
	res := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data)), validateNaNInf: m.validateNaNInf}
	for idx, v := range m.data {
		res.data[idx] = U(v)
	}

	return res
}

// Trace returns Σ m[i,i] over the main diagonal. A 0×0 matrix has trace 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n).
func (m *Dense[T]) Trace() (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var sum T
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
