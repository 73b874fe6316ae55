// SPDX-License-Identifier: MIT

package basic

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the scalar constraint accepted by the matrix engine.
// Every type in the set supports +, -, *, /, ordering and conversion to float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is the subset of Number that has a meaningful negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// ToFloat64 converts any Number into a float64.
// Complexity: O(1).
func ToFloat64[T Number](v T) float64 {
	return float64(v)
}

// ToInt converts any Number into an int, truncating toward zero for floats.
// NaN and ±Inf map to 0 instead of the platform-dependent conversion result.
// Complexity: O(1).
func ToInt[T Number](v T) int {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(v)
}

// IsIntegral reports whether T truncates on division (any integer kind).
// Complexity: O(1).
func IsIntegral[T Number]() bool {
	var one, two T = 1, 2

	return one/two == 0
}

// IsFinite reports whether v is neither NaN nor ±Inf. Integers are always finite.
// Complexity: O(1).
func IsFinite[T Number](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
