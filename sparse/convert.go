// SPDX-License-Identifier: MIT

// Package sparse: construction from and conversion to other representations.
//
// These are the only ways a populated Matrix enters or leaves the kernel:
//   - FromDense / ToDense  — dense rectangular arrays (matrix.Dense).
//   - FromTriplets         — coordinate (COO) lists, duplicates summed.
//   - FromCSC              — raw compressed-column buffers, validated.
//   - Convert              — change of element type, pattern preserved.

package sparse

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsparse/matrix"
)

const (
	ctxFromDense    = "FromDense"
	ctxFromTriplets = "FromTriplets"
	ctxFromCSC      = "FromCSC"
	ctxConvert      = "Convert"
)

// FromDense builds a sparse matrix from d, storing the cells accepted by keep.
// MAIN DESCRIPTION:
//   - keep == nil stores every cell that is not the identity.
//   - A custom keep may store explicit identity values or mask cells out.
//
// Implementation:
//   - Column-major scan (j outer, i inner) so rows are appended in increasing
//     order and colptr is closed after each column.
//
// Errors:
//   - ErrNilMatrix when d is nil.
//
// Complexity:
//   - Time O(r*c), Space O(cols + nnz).
func FromDense[T matrix.Element](d *matrix.Dense[T], keep func(i, j int, v T) bool) (*Matrix[T], error) {
	if d == nil {
		return nil, sparseErrorf(ctxFromDense, ErrNilMatrix)
	}
	if keep == nil {
		keep = func(_, _ int, v T) bool { return !matrix.IsZero(v) }
	}
	rows, cols := d.Shape()
	m := newMatrix[T](rows, cols, 0)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v, _ := d.At(i, j) // indices are in range by construction
			if keep(i, j, v) {
				m.rowidx = append(m.rowidx, i)
				m.values = append(m.values, v)
			}
		}
		m.colptr[j+1] = len(m.rowidx)
	}

	return m, nil
}

// ToDense materializes every cell, filling the identity where unstored.
// The caller ensures rows*cols is addressable (see matrix.ValidateCells).
// Complexity: O(r*c + nnz).
func (m *Matrix[T]) ToDense() *matrix.Dense[T] {
	d, _ := matrix.NewDense[T](m.rows, m.cols)
	m.Do(func(i, j int, v T) bool {
		_ = d.Set(i, j, v)
		return true
	})

	return d
}

// FromTriplets builds a sparse matrix from coordinate entries.
// MAIN DESCRIPTION:
//   - Entries may arrive in any order; they are sorted by (col, row).
//   - Duplicate coordinates are summed into one stored entry.
//   - Values are kept as given: explicit identity values (and duplicates that
//     sum to the identity) stay stored until Compress(true).
//
// Errors:
//   - ErrInvalidDimension on negative shape.
//   - ErrOutOfRange when a triplet lies outside the shape.
//
// Complexity:
//   - Time O(k log k + cols), Space O(k + cols) for k triplets.
func FromTriplets[T matrix.Element](rows, cols int, ts []Triplet[T]) (*Matrix[T], error) {
	if err := matrix.ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromTriplets, rows, cols, err)
	}
	for k, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("%s: triplet %d at (%d,%d): %w", ctxFromTriplets, k, t.Row, t.Col, ErrOutOfRange)
		}
	}
	sorted := slices.Clone(ts)
	slices.SortStableFunc(sorted, func(x, y Triplet[T]) int {
		if c := cmp.Compare(x.Col, y.Col); c != 0 {
			return c
		}
		return cmp.Compare(x.Row, y.Row)
	})

	m := newMatrix[T](rows, cols, 0)
	m.rowidx = make([]int, 0, len(sorted))
	m.values = make([]T, 0, len(sorted))
	col := 0
	for _, t := range sorted {
		for col < t.Col { // close every column before t.Col
			m.colptr[col+1] = len(m.rowidx)
			col++
		}
		n := len(m.rowidx)
		if n > m.colptr[col] && m.rowidx[n-1] == t.Row {
			m.values[n-1] += t.Value // duplicate coordinate
			continue
		}
		m.rowidx = append(m.rowidx, t.Row)
		m.values = append(m.values, t.Value)
	}
	for ; col < cols; col++ {
		m.colptr[col+1] = len(m.rowidx)
	}

	return m, nil
}

// FromCSC copies raw compressed-column buffers into a new Matrix and
// validates every invariant. len(rowidx) and len(values) define the capacity.
//
// Errors:
//   - ErrInvalidDimension on negative shape.
//   - ErrInvalidStructure when the buffers break an invariant.
func FromCSC[T matrix.Element](rows, cols int, colptr, rowidx []int, values []T) (*Matrix[T], error) {
	if err := matrix.ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromCSC, rows, cols, err)
	}
	m := &Matrix[T]{
		rows:   rows,
		cols:   cols,
		colptr: slices.Clone(colptr),
		rowidx: slices.Clone(rowidx),
		values: slices.Clone(values),
	}
	if err := m.Validate(); err != nil {
		return nil, sparseErrorf(ctxFromCSC, err)
	}

	return m, nil
}

// Convert returns a matrix of element type U with the same pattern, each
// stored value mapped through f (e.g. real → complex).
// Identity values produced by f stay stored; compact explicitly if needed.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//
// Complexity:
//   - Time O(cols + nnz), Space O(cols + nnz).
func Convert[T, U matrix.Element](a *Matrix[T], f func(T) U) (*Matrix[U], error) {
	if a == nil {
		return nil, sparseErrorf(ctxConvert, ErrNilMatrix)
	}
	nnz := a.NNZ()
	r := newMatrix[U](a.rows, a.cols, nnz)
	copy(r.colptr, a.colptr)
	copy(r.rowidx, a.rowidx[:nnz])
	for k := 0; k < nnz; k++ {
		r.values[k] = f(a.values[k])
	}

	return r, nil
}
