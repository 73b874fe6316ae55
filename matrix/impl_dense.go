// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy windows (MatrixView) and copy-based extraction (Induced).
//   - Support in-place growth by row/column append.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1);
//     Induced: O(r'*c'); AppendRow: amortized O(c); AppendCol: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mathol/basic"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxApply     = "Apply"     // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxCol       = "Col"       // method tag used in error wrappers
	ctxAppendRow = "AppendRow" // method tag used in error wrappers
	ctxAppendCol = "AppendCol" // method tag used in error wrappers
	ctxView      = "View"      // ctor tag for Dense.View
	ctxInduce    = "Induced"   // ctor tag for Dense.Induced
	ctxNew       = "NewDense"  // ctor tag for NewDense/NewDenseFrom
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over any basic.Number scalar.
//   - r,c hold dimensions (rows, cols); zero is legal for either.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply (float scalars only).
//
// A Dense exclusively owns its buffer. Copies are explicit (Clone, Induced, Row, Col).
// A Dense is not safe for concurrent mutation; clone it or serialize access.
type Dense[T basic.Number] struct {
	r, c           int  // row and column counts (>= 0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c matrix filled with the additive identity.
//
// Implementation:
//   - Stage 1: Reject negative dimensions.
//   - Stage 2: Resolve options and allocate a zeroed r*c buffer.
//
// Behavior highlights:
//   - Zero rows or columns are legal and yield an empty buffer.
//
// Inputs:
//   - rows, cols: dimensions (>= 0).
//   - opts: WithValidateNaNInf / WithNoValidateNaNInf select the numeric policy.
//
// Returns:
//   - *Dense[T]: a new matrix owning its buffer.
//
// Errors:
//   - ErrBadShape when rows or cols is negative.
//
// Determinism:
//   - make() zero-fills; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer NewDenseFrom when the elements are already at hand.
func NewDense[T basic.Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix from a row-major data slice.
//
// Implementation:
//   - Stage 1: Check rows, cols >= 0 and len(data) == rows*cols.
//   - Stage 2: Allocate via NewDense with the same options.
//   - Stage 3: With the numeric policy on, scan data for NaN/Inf.
//   - Stage 4: Copy data into the new buffer.
//
// Behavior highlights:
//   - The slice is copied, so the caller keeps ownership of data.
//   - A rejected input allocates nothing the caller can observe.
//
// Inputs:
//   - rows, cols: dimensions (>= 0).
//   - data: row-major elements, offset i*cols + j.
//   - opts: numeric policy options as for NewDense.
//
// Returns:
//   - *Dense[T]: a new matrix holding a copy of data.
//
// Errors:
//   - ErrBadShape when rows/cols are negative or len(data) != rows*cols.
//   - ErrNaNInf when the policy is enabled and data holds a non-finite value;
//     the message carries the (row,col) of the first offender.
//
// Determinism:
//   - The scan stops at the first non-finite value in row-major order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T basic.Number](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s(%d,%d): len(data)=%d: %w", ctxNew, rows, cols, len(data), ErrBadShape)
	}
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if !basic.IsFinite(v) {
				return nil, denseErrorf(ctxNew, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own method tag and coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// at is the unchecked element read used by kernels after shape validation.
func (m *Dense[T]) at(row, col int) T { return m.data[row*m.c+col] }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrNaNInf for a non-finite v while the numeric policy is enabled.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !basic.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf(ctxCol, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// AppendRow grows the matrix by one row at the bottom.
// len(row) must equal Cols(); otherwise ErrLengthMismatch and the matrix is unchanged.
// Complexity: amortized O(c).
func (m *Dense[T]) AppendRow(row []T) error {
	if m == nil {
		return denseErrorf(ctxAppendRow, 0, 0, ErrNilMatrix)
	}
	if len(row) != m.c {
		return fmt.Errorf("Dense.%s: row must have %d columns, got %d: %w", ctxAppendRow, m.c, len(row), ErrLengthMismatch)
	}
	if m.validateNaNInf {
		for j, v := range row {
			if !basic.IsFinite(v) {
				return denseErrorf(ctxAppendRow, m.r, j, ErrNaNInf)
			}
		}
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// AppendCol grows the matrix by one column on the right.
// len(col) must equal Rows(); otherwise ErrLengthMismatch and the matrix is unchanged.
// The buffer is reallocated: one value of col lands after every Cols() old values.
// Complexity: O(r*c).
func (m *Dense[T]) AppendCol(col []T) error {
	if m == nil {
		return denseErrorf(ctxAppendCol, 0, 0, ErrNilMatrix)
	}
	if len(col) != m.r {
		return fmt.Errorf("Dense.%s: column must have %d rows, got %d: %w", ctxAppendCol, m.r, len(col), ErrLengthMismatch)
	}
	if m.validateNaNInf {
		for i, v := range col {
			if !basic.IsFinite(v) {
				return denseErrorf(ctxAppendCol, i, m.c, ErrNaNInf)
			}
		}
	}
	nc := m.c + 1
	buf := make([]T, m.r*nc)
	for i := 0; i < m.r; i++ {
		copy(buf[i*nc:i*nc+m.c], m.data[i*m.c:(i+1)*m.c])
		buf[i*nc+m.c] = col[i]
	}
	m.data = buf
	m.c = nc

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// A nil receiver clones to nil.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Data returns a copy of the row-major buffer; nil for a nil receiver.
// Complexity: O(r*c).
func (m *Dense[T]) Data() []T {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Equal reports whether other has the same shape and identical elements.
// Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// String renders one bracketed, comma-separated line per row for diagnostics.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%v", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// Writes via the view reflect in the base; the numeric policy is inherited.
//
// Errors:
//   - ErrBadShape when the window does not fit inside the matrix.
//
// Complexity: O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*MatrixView[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxView, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView[T]{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy with the rows rowsIdx and columns colsIdx, in
// the given order (duplicates allowed). Zero-length index sets are legal.
//
// Errors:
//   - ErrOutOfRange when any index falls outside the matrix.
//
// Complexity: Time O(r'*c'), Space O(r'*c').
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrNilMatrix)
	}
	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense[T]{
		r:              rp,
		c:              cp,
		data:           make([]T, rp*cp),
		validateNaNInf: m.validateNaNInf,
	}

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. A nil receiver visits nothing.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// With the numeric policy enabled a non-finite result aborts with ErrNaNInf;
// elements written before the error remain updated. A nil receiver returns
// ErrNilMatrix.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	if m == nil {
		return denseErrorf(ctxApply, 0, 0, ErrNilMatrix)
	}
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !basic.IsFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
type MatrixView[T basic.Number] struct {
	base *Dense[T] // underlying storage owner
	r0   int       // top-left row offset in base
	c0   int       // top-left col offset in base
	r    int       // view height
	c    int       // view width
}

// Rows returns the number of rows in the view.
func (v *MatrixView[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView[T]) Cols() int { return v.c }

// At reads element (i,j) of the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *MatrixView[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base, honoring its numeric policy.
// Complexity: O(1).
func (v *MatrixView[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && !basic.IsFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// Dense copies the window into an independent matrix.
// Complexity: O(r*c).
func (v *MatrixView[T]) Dense() *Dense[T] {
	out := &Dense[T]{
		r:              v.r,
		c:              v.c,
		data:           make([]T, v.r*v.c),
		validateNaNInf: v.base.validateNaNInf,
	}
	for i := 0; i < v.r; i++ {
		start := (v.r0+i)*v.base.c + v.c0
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[start:start+v.c])
	}

	return out
}
