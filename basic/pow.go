// SPDX-License-Identifier: MIT

package basic

// panicNegativeExponent is raised by Pow for exponents below zero.
const panicNegativeExponent = "basic: Pow: exponent must be non-negative"

// Pow raises base to a non-negative integer exponent by repeated multiplication.
// Pow(x, 0) == 1 for every x, including 0.
//
// Unsigned bases wrap modulo 2^bits, so Pow(T(0)-1, k) still yields the
// (-1)^k sign term under modular arithmetic.
//
// Panics on a negative exponent (programmer error).
// Complexity: O(exponent).
func Pow[T Number](base T, exponent int) T {
	if exponent < 0 {
		panic(panicNegativeExponent)
	}

	var result T = 1
	for ; exponent > 0; exponent-- {
		result *= base
	}

	return result
}

// MinusOnePow returns (-1)^k in T, the sign term of a cofactor.
// Complexity: O(k).
func MinusOnePow[T Number](k int) T {
	var zero, one T = 0, 1

	return Pow(zero-one, k)
}
