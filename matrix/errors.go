// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors of the linear-system engine.
// Kernels return only these values, wrapped with an operation tag, and tests
// match them via errors.Is. User-triggered conditions never panic; panics
// are kept for invalid Option parameters.

package matrix

import "errors"

// Messages carry the "matrix:" prefix. Kernels wrap these sentinels with an operation
// tag via matrixErrorf ("Det: matrix: matrix is not square"); callers match
// with errors.Is.
//
// When several checks fail, the first in this order is reported:
// nil -> shape/index -> dimension mismatch -> numeric (singular, inexact)
// -> classification (unsolvable).

var (
	// ErrBadShape is returned when the requested shape is invalid: negative
	// dimensions, a data slice whose length differs from rows*cols, or ragged rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col/Submatrix) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLengthMismatch indicates that an appended row/column or a constant
	// vector does not match the matrix dimension it is paired with.
	ErrLengthMismatch = errors.New("matrix: vector length mismatch")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the inverse of a zero-determinant matrix is requested.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInexact is returned by Inverse on integer scalars when a cofactor is not
	// evenly divisible by the determinant. Convert to a float type first.
	ErrInexact = errors.New("matrix: inverse not representable in integer scalar")

	// ErrRankUndefined is returned by Rank for matrices without any element (0×k or k×0).
	ErrRankUndefined = errors.New("matrix: rank undefined")

	// ErrUnsolvable is returned by Solve when the system does not have exactly one solution.
	ErrUnsolvable = errors.New("matrix: linear system has no unique solution")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Apply, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
