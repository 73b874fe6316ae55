// SPDX-License-Identifier: MIT

// Package basic provides the scalar primitives shared by every mathol package:
// the Number constraint, integer powers, float conversion, absolute values and
// the scalar (dot) product of two vectors.
//
// All functions are pure and allocation-free unless stated otherwise.
//
// Complexity quicksheet:
//   - Pow: O(exponent); ToFloat64/ToInt/Amount: O(1); ScalarProduct: O(n).
package basic
