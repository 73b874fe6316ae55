// SPDX-License-Identifier: MIT

package basic

import "math"

// Amount returns the absolute value of v.
// For floats the sign bit is cleared, so Amount(-0.0) == +0.0.
// Complexity: O(1).
func Amount[T Signed](v T) T {
	f := float64(v)
	if math.Signbit(f) {
		return -v
	}

	return v
}
