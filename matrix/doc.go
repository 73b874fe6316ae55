// SPDX-License-Identifier: MIT

// Package matrix is a small, generic dense-matrix engine for exact and
// floating-point linear algebra.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major rows×cols container over any integer or float
//     element type, with bounds-checked access, growth (AppendRow/AppendCol),
//     windows (View, Induced) and an optional NaN/Inf policy.
//   - Algebra: Add, Sub, Scale, Mul, MatVec, Transpose, Trace and Convert.
//   - Determinants by closed forms up to 3×3 and Laplace expansion beyond,
//     together with Submatrix and the wrapped diagonal products.
//   - Inverse via the adjugate; exact for integer types or ErrInexact.
//   - Rank by contiguous minor search.
//   - IsSolvable to classify A·x = c as OneSolution, InfiniteSolutions or
//     NoSolution, and Solve for Gaussian elimination in float64.
//
// Errors are sentinel values (ErrNonSquare, ErrSingular, ...) wrapped with an
// operation tag; match them with errors.Is.
//
// Determinants cost O(n!) for n ≥ 4, so the engine is aimed at the small
// systems found in teaching material, calculators and tests.
package matrix
