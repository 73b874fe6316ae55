// SPDX-License-Identifier: MIT

// Package matrix: functional options for construction and solving.
//
// Options resolve over the Default* constants; the last option wins. With*
// constructors panic on nonsensical values (negative or non-finite
// tolerances), which are programmer errors.
//
// Readers:
//   - validateNaNInf: NewDense/NewDenseFrom, carried by Clone, Induced and
//     View; it only ever fires for float scalars.
//   - pivotEps: Solve treats a pivot p with |p| <= pivotEps as zero. The
//     default 0 gives the exact zero test.
//   - eps: Solve's tolerance when checking the reduced rows against the
//     identity.
package matrix

import "math"

const (
	// DefaultEpsilon is the absolute tolerance of structural float checks.
	DefaultEpsilon = 1e-9

	// DefaultPivotEpsilon treats only an exact 0.0 as a zero pivot.
	DefaultPivotEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid      = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotEpsilonInvalid = "matrix: WithPivotEpsilon: eps must be finite, non-negative"
)

// Option mutates the resolved Options.
type Option func(*Options)

// Options is the configuration after every Option has been applied.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	pivotEps       float64 // >= 0; DefaultPivotEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the absolute tolerance used by structural checks
// (identity convergence in Solve).
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if !validTol(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotEpsilon sets the magnitude at or below which a pivot counts as zero
// during Gaussian elimination.
// Panics when eps is NaN, ±Inf or negative.
func WithPivotEpsilon(eps float64) Option {
	if !validTol(eps) {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithValidateNaNInf enables rejection of NaN/±Inf in Set and Apply.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables rejection of NaN/±Inf in Set and Apply.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// PivotEpsilon returns the resolved zero-pivot threshold.
func (o Options) PivotEpsilon() float64 { return o.pivotEps }

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns a fresh Options filled with the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		pivotEps:       DefaultPivotEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order (last one wins). Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validTol reports whether tol is finite and non-negative.
func validTol(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}
