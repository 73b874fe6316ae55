// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/length checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mathol/basic"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T basic.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T basic.Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T basic.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T basic.Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is accepted only when n == 0.
// Errors: ErrLengthMismatch.
// Complexity: O(1).
func ValidateVecLen[T basic.Number](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrLengthMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row < Rows and 0 ≤ col < Cols.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex[T basic.Number](m *Dense[T], row, col int) error {
	if _, err := m.indexOf(row, col); err != nil {
		return validatorErrorf("ValidateIndex", err)
	}

	return nil
}
