// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparisons and bulk transforms on float64 matrices,
//     used to check solver and inverse results against expectations.
//
// Design:
//   - Operands are validated with the central validators.
//   - Transforms return fresh matrices; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances → ErrNaNInf.
func AllClose(a, b *Dense[float64], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// ReplaceNonFinite returns a copy of m with every NaN/±Inf replaced by val.
// The copy does not enforce the NaN/Inf policy.
// Time: O(r*c).
func ReplaceNonFinite(m *Dense[float64], val float64) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ReplaceNonFinite", err)
	}
	out := m.Clone()
	out.validateNaNInf = false
	for idx, v := range out.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.data[idx] = val
		}
	}

	return out, nil
}

// Round returns a copy of m with every element rounded to the given number of
// decimal places. Used to print solver output without float noise.
// Time: O(r*c).
func Round(m *Dense[float64], places int) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Round", err)
	}
	if places < 0 {
		return nil, matrixErrorf("Round", fmt.Errorf("places=%d: %w", places, ErrOutOfRange))
	}
	scale := math.Pow(10, float64(places))
	out := m.Clone()
	for idx, v := range out.data {
		r := math.Round(v*scale) / scale
		if r == 0 {
			r = 0 // drop negative zero
		}
		out.data[idx] = r
	}

	return out, nil
}
