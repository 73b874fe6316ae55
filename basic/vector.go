// SPDX-License-Identifier: MIT

package basic

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when two vectors of different lengths are combined.
var ErrLengthMismatch = errors.New("basic: vector length mismatch")

// ScalarProduct returns Σ a[i]*b[i].
// Both vectors must have the same length; empty vectors yield 0.
// Complexity: O(n).
func ScalarProduct[T Number](a, b []T) (T, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("ScalarProduct(%d,%d): %w", len(a), len(b), ErrLengthMismatch)
	}

	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Pythagoras2D returns sqrt(a² + b²).
func Pythagoras2D[T Number](a, b T) float64 {
	fa, fb := float64(a), float64(b)

	return math.Sqrt(fa*fa + fb*fb)
}

// Pythagoras3D returns sqrt(a² + b² + c²).
func Pythagoras3D[T Number](a, b, c T) float64 {
	fa, fb, fc := float64(a), float64(b), float64(c)

	return math.Sqrt(fa*fa + fb*fb + fc*fc)
}
