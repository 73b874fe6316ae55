// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private elimination kernels and panic messages.
// Compiled only with the package tests; invisible in production builds.

var (
	ExportedShuffle     = shuffle[int]
	ExportedReduceRow   = reduceRow
	ExportedAddGaussian = addGaussian
)

// Panic message exports to avoid magic strings in tests.
const (
	PanicEpsilonInvalid_TestOnly      = panicEpsilonInvalid
	PanicPivotEpsilonInvalid_TestOnly = panicPivotEpsilonInvalid
)
