// Package mathol is a small, generic linear-algebra toolkit for exact and
// floating-point matrices.
//
// What is inside?
//
//	basic/            — numeric constraint (Number), powers, scalar product
//	matrix/           — Dense[T] storage, algebra, determinants, inverse,
//	                    rank, solvability classification and Gaussian solver
//	internal/sysfile/ — YAML linear-system documents for the CLI
//	cmd/mathol/       — command-line front end (det, trace, rank, inverse,
//	                    classify, solve)
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{4, 7}, {-3, 8}})
//	det, _ := a.Det()                            // 53
//	kind, _ := matrix.IsSolvable(a, []int{1, 2}) // OneSolution
//	_, x, _ := matrix.Solve(a, []int{1, 2})      // x ≈ [-0.1132 0.2075]
//
// Every generic is bound by basic.Number (all integer and float kinds).
// Integer matrices keep exact arithmetic for Det and Inverse; Solve always
// works in float64.
//
// Errors are package-level sentinels (matrix.ErrNonSquare, matrix.ErrSingular,
// ...) wrapped with the failing operation; match them with errors.Is.
package mathol
