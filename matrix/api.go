// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common construction tasks.
//   - Each facade delegates to the canonical constructor or kernel.
//
// Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mathol/basic"
)

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros[T basic.Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T basic.Number](n int, opts ...Option) (*Dense[T], error) {
	id, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// FromRows builds a matrix from a slice of equally long rows (copied).
// An empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape when rows have different lengths.
//   - ErrNaNInf under the numeric policy.
//
// Complexity: O(r*c).
func FromRows[T basic.Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewDense[T](0, 0, opts...)
	}
	c := len(rows[0])
	data := make([]T, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(row), c, ErrBadShape)
		}
		data = append(data, row...)
	}

	return NewDenseFrom(len(rows), c, data, opts...)
}

// ToRows returns the rows of m as freshly allocated slices.
// Complexity: O(r*c).
func ToRows[T basic.Number](m *Dense[T]) ([][]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out, nil
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
// Complexity: O(r*c).
func ZerosLike[T basic.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), validateNaNInf: m.validateNaNInf}, nil
}

// IdentityLike returns I with dimension Rows(m); m must be square.
// Complexity: O(n^2).
func IdentityLike[T basic.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	id, _ := ZerosLike(m)
	for i := 0; i < m.r; i++ {
		id.data[i*m.c+i] = 1
	}

	return id, nil
}
