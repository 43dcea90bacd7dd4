// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Serve as the "dense rectangular array" side of the sparse kernel boundary
//     (sparse.FromDense / (*sparse.Matrix).ToDense / structure-expanding scalar ops).
//
// AI-Hints:
//   - Use Do for read-only traversal without per-cell bounds checks.
//   - Use RowMajor when a flat copy is needed for comparisons (e.g. cmp.Diff in tests).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Do/Apply: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRows  = "FromRows"
	ctxFlat  = "FromRowMajor"
	ctxNewDn = "NewDense"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols); zero is legal for either.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64]    = (*Dense[float64])(nil)
	_ Matrix[complex128] = (*Dense[complex128])(nil)
	_ fmt.Stringer       = (*Dense[float64])(nil)
)

// NewDense creates an r×c matrix filled with the additive identity.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-sized shapes are legal; they arise naturally from empty sparse operands.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDn, rows, cols, ErrInvalidDimensions)
	}
	if err := ValidateCells(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDn, rows, cols, err)
	}
	// make() zero-fills deterministically, which is exactly the identity of T.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular slice of rows (deep copy).
//
// Errors:
//   - ErrBadShape when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxRows, i, len(row), c, ErrBadShape)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// FromRowMajor builds an r×c Dense from a flat row-major slice (deep copy).
//
// Errors:
//   - ErrInvalidDimensions on negative shape; ErrBadShape when len(vals) != r*c.
func FromRowMajor[T Element](rows, cols int, vals []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFlat, rows, cols, ErrInvalidDimensions)
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): got %d values: %w", ctxFlat, rows, cols, len(vals), ErrBadShape)
	}
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods (At/Set) wrap with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var z T

		return z, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Fill assigns v to every cell.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Clone returns a deep copy (new buffer).
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// RowMajor returns a flat row-major copy of the contents.
// Complexity: O(r*c).
func (m *Dense[T]) RowMajor() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Determinism:
//   - Fixed i→j order; side effects are predictable.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
