// SPDX-License-Identifier: MIT

// Package sysfile loads linear-system documents for the mathol CLI.
//
// A document is YAML:
//
//	rows: 2
//	columns: 3
//	data: [1, -2, 1, 1, 1, -4]   # row-major
//	constants: [1, 8]            # optional; one per row
//
// Decoding is strict: unknown fields are rejected. Struct tags are then
// checked with go-playground/validator and finally the shape is checked
// against the data length.
package sysfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mathol/matrix"
)

// ErrInvalidDocument is returned when a document fails validation or its
// shape does not match its data.
var ErrInvalidDocument = errors.New("sysfile: invalid document")

// ErrNoConstants is returned by Constants when the document has none.
var ErrNoConstants = errors.New("sysfile: document has no constants")

var validate = validator.New()

// Document is one linear system A·x = c, or a bare matrix A when Constants
// is empty.
type Document struct {
	Rows      int       `yaml:"rows" validate:"gte=0"`
	Columns   int       `yaml:"columns" validate:"gte=0"`
	Data      []float64 `yaml:"data" validate:"required"`
	Constants []float64 `yaml:"constants,omitempty" validate:"omitempty,min=1"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sysfile: read %s: %w", path, err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes and validates a document.
func Parse(raw []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("sysfile: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate runs the struct tags and the shape checks.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s fails %q", ErrInvalidDocument, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(d.Data) != d.Rows*d.Columns {
		return fmt.Errorf("%w: %d×%d needs %d values, got %d", ErrInvalidDocument, d.Rows, d.Columns, d.Rows*d.Columns, len(d.Data))
	}
	if len(d.Constants) > 0 && len(d.Constants) != d.Rows {
		return fmt.Errorf("%w: %d rows need %d constants, got %d", ErrInvalidDocument, d.Rows, d.Rows, len(d.Constants))
	}

	return nil
}

// Matrix builds the coefficient matrix.
func (d *Document) Matrix() (*matrix.Dense[float64], error) {
	return matrix.NewDenseFrom(d.Rows, d.Columns, d.Data)
}

// HasConstants reports whether the document describes a full system.
func (d *Document) HasConstants() bool { return len(d.Constants) > 0 }

// System returns the coefficient matrix together with a copy of the constants.
func (d *Document) System() (*matrix.Dense[float64], []float64, error) {
	if !d.HasConstants() {
		return nil, nil, ErrNoConstants
	}
	a, err := d.Matrix()
	if err != nil {
		return nil, nil, err
	}
	c := make([]float64, len(d.Constants))
	copy(c, d.Constants)

	return a, c, nil
}
