// SPDX-License-Identifier: MIT

// Package sparse - compressed-column (CSC) storage & read-only accessors.
//
// Purpose:
//   - Own three parallel buffers: colptr (len cols+1), rowidx and values
//     (len == capacity >= nnz). Entries of column j live in
//     [colptr[j], colptr[j+1]) with strictly increasing row indices.
//   - Expose read-only queries (shape, nnz, element lookup, iteration).
//   - Offer NO single-element insert: engines build whole columns left to
//     right through an output cursor, constructors build from dense/COO input.
//
// Invariants:
//   - colptr[0] == 0, colptr[cols] == nnz, colptr non-decreasing.
//   - rowidx strictly increasing inside each column, values in [0, rows).
//   - len(rowidx) == len(values) == capacity >= nnz.
//   - Stored values MAY equal the identity until Compress(true) is requested.
//
// Complexity quicksheet:
//   - New: O(cols + capacity); At: O(log k) for k entries in the column;
//     Clone/Do/Entries: O(cols + nnz).

package sparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvsparse/matrix"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxAt       = "At"
	ctxValidate = "Validate"
)

// Triplet is one stored entry in coordinate form.
type Triplet[T matrix.Element] struct {
	Row, Col int
	Value    T
}

// Matrix is a sparse matrix in compressed-column form.
// The zero value is not usable; construct with New or a From* constructor.
// A Matrix exclusively owns its buffers. It is not safe for concurrent
// mutation (in-place ops); concurrent reads are safe.
type Matrix[T matrix.Element] struct {
	rows, cols int
	colptr     []int // len == cols+1
	rowidx     []int // len == capacity
	values     []T   // len == capacity, parallel to rowidx
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ matrix.Matrix[float64]    = (*Matrix[float64])(nil)
	_ matrix.Matrix[complex128] = (*Matrix[complex128])(nil)
	_ fmt.Stringer              = (*Matrix[float64])(nil)
)

// New creates an empty rows×cols matrix with room for capacity entries.
// MAIN DESCRIPTION:
//   - Allocates the three buffers; colptr is zero-initialized, so nnz == 0.
//
// Errors:
//   - ErrInvalidDimension when rows, cols or capacity is negative.
//
// Complexity:
//   - Time O(cols + capacity), Space O(cols + capacity).
func New[T matrix.Element](rows, cols, capacity int) (*Matrix[T], error) {
	if err := matrix.ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%s: capacity %d: %w", ctxNew, capacity, ErrInvalidDimension)
	}

	return newMatrix[T](rows, cols, capacity), nil
}

// newMatrix is the unchecked constructor used by engines after validation.
func newMatrix[T matrix.Element](rows, cols, capacity int) *Matrix[T] {
	return &Matrix[T]{
		rows:   rows,
		cols:   cols,
		colptr: make([]int, cols+1),
		rowidx: make([]int, capacity),
		values: make([]T, capacity),
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols(). Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of structurally stored entries (explicit
// identity values included). Complexity: O(1).
func (m *Matrix[T]) NNZ() int { return m.colptr[m.cols] }

// Cap returns the capacity of the entry buffers. Complexity: O(1).
func (m *Matrix[T]) Cap() int { return len(m.rowidx) }

// At returns the element at (i, j), or the identity when (i, j) is not stored.
// MAIN DESCRIPTION:
//   - Binary search over the row indices of column j.
//
// Errors:
//   - ErrOutOfRange when indices are invalid.
//
// Complexity:
//   - Time O(log k), k = entries in column j. No allocations.
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, fmt.Errorf("Sparse.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.colptr[j], m.colptr[j+1]
	if p, ok := slices.BinarySearch(m.rowidx[lo:hi], i); ok {
		return m.values[lo+p], nil
	}

	return zero, nil
}

// IsScalar reports whether the matrix is 1×1.
func (m *Matrix[T]) IsScalar() bool { return m.rows == 1 && m.cols == 1 }

// Scalar returns the single element of a 1×1 matrix. ok is false otherwise.
func (m *Matrix[T]) Scalar() (v T, ok bool) {
	if !m.IsScalar() {
		return v, false
	}
	v, _ = m.At(0, 0)

	return v, true
}

// Clone returns a deep copy trimmed to nnz; no buffer is shared.
// Complexity: O(cols + nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	nnz := m.NNZ()
	cp := newMatrix[T](m.rows, m.cols, nnz)
	copy(cp.colptr, m.colptr)
	copy(cp.rowidx, m.rowidx[:nnz])
	copy(cp.values, m.values[:nnz])

	return cp
}

// Do visits stored entries in column-major order and calls f(i, j, v).
// Stops early when f returns false.
// Complexity: O(cols + nnz).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var j, p int
	for j = 0; j < m.cols; j++ {
		for p = m.colptr[j]; p < m.colptr[j+1]; p++ {
			if !f(m.rowidx[p], j, m.values[p]) {
				return
			}
		}
	}
}

// Entries returns the stored entries in column-major order.
// Complexity: O(cols + nnz).
func (m *Matrix[T]) Entries() []Triplet[T] {
	out := make([]Triplet[T], 0, m.NNZ())
	m.Do(func(i, j int, v T) bool {
		out = append(out, Triplet[T]{Row: i, Col: j, Value: v})
		return true
	})

	return out
}

// Pattern returns copies of the column pointers and the row indices of the
// stored entries (trimmed to nnz).
func (m *Matrix[T]) Pattern() (colptr, rowidx []int) {
	return slices.Clone(m.colptr), slices.Clone(m.rowidx[:m.NNZ()])
}

// String renders "r×c nnz=k" followed by one "(i,j) v" line per entry.
// Intended for diagnostics, not hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d×%d nnz=%d\n", m.rows, m.cols, m.NNZ())
	m.Do(func(i, j int, v T) bool {
		fmt.Fprintf(&b, "(%d,%d) %g\n", i, j, v)
		return true
	})

	return b.String()
}

// Validate checks the container invariants and returns ErrInvalidStructure
// describing the first violation found.
// Complexity: O(cols + nnz).
func (m *Matrix[T]) Validate() error {
	if m.rows < 0 || m.cols < 0 {
		return fmt.Errorf("%s: shape %dx%d: %w", ctxValidate, m.rows, m.cols, ErrInvalidStructure)
	}
	if len(m.colptr) != m.cols+1 {
		return fmt.Errorf("%s: len(colptr)=%d, want %d: %w", ctxValidate, len(m.colptr), m.cols+1, ErrInvalidStructure)
	}
	if m.colptr[0] != 0 {
		return fmt.Errorf("%s: colptr[0]=%d: %w", ctxValidate, m.colptr[0], ErrInvalidStructure)
	}
	if len(m.rowidx) != len(m.values) {
		return fmt.Errorf("%s: len(rowidx)=%d != len(values)=%d: %w", ctxValidate, len(m.rowidx), len(m.values), ErrInvalidStructure)
	}
	var j, p int
	for j = 0; j < m.cols; j++ {
		lo, hi := m.colptr[j], m.colptr[j+1]
		if hi < lo || hi > len(m.rowidx) {
			return fmt.Errorf("%s: colptr[%d..%d]=%d..%d: %w", ctxValidate, j, j+1, lo, hi, ErrInvalidStructure)
		}
		for p = lo; p < hi; p++ {
			r := m.rowidx[p]
			if r < 0 || r >= m.rows {
				return fmt.Errorf("%s: row %d in column %d out of range: %w", ctxValidate, r, j, ErrInvalidStructure)
			}
			if p > lo && m.rowidx[p-1] >= r {
				return fmt.Errorf("%s: rows not strictly increasing in column %d: %w", ctxValidate, j, ErrInvalidStructure)
			}
		}
	}

	return nil
}
