// SPDX-License-Identifier: MIT

// Package matrix: domain types returned by the classification kernels.
package matrix

import "fmt"

// Solvability classifies a linear system A·x = c.
// It is a pure result value; the zero value is OneSolution.
type Solvability int

const (
	// OneSolution: rank(A) == rank(A|c) == Cols(A).
	OneSolution Solvability = iota
	// InfiniteSolutions: rank(A) == rank(A|c) < Cols(A).
	InfiniteSolutions
	// NoSolution: rank(A) != rank(A|c).
	NoSolution
)

var solvabilityNames = [...]string{
	OneSolution:       "OneSolution",
	InfiniteSolutions: "InfiniteSolutions",
	NoSolution:        "NoSolution",
}

// String implements fmt.Stringer.
func (s Solvability) String() string {
	if s < 0 || int(s) >= len(solvabilityNames) {
		return fmt.Sprintf("Solvability(%d)", int(s))
	}

	return solvabilityNames[s]
}

// MarshalText encodes the classification by name (used by YAML/JSON encoders).
func (s Solvability) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a classification name produced by MarshalText.
func (s *Solvability) UnmarshalText(text []byte) error {
	for i, name := range solvabilityNames {
		if name == string(text) {
			*s = Solvability(i)
			return nil
		}
	}

	return fmt.Errorf("matrix: unknown solvability %q", string(text))
}
