// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide dense element-wise and broadcast kernels over *Dense[T].
//   - These are the dense reference semantics the sparse kernel must agree with
//     cell by cell, and the storage used when a sparse scalar operation has to
//     materialize every implicit cell.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 over the row-major buffer).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "fmt"

// matrixErrorf tags an error with the public entry point name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Elementwise computes out[i,j] = fn(a[i,j], b[i,j]).
// MAIN DESCRIPTION:
//   - Dense binary map; the dense counterpart of sparse.Apply.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Elementwise[T Element](a, b *Dense[T], fn func(x, y T) T) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("Elementwise", ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Elementwise", err)
	}
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for k := range a.data {
		out.data[k] = fn(a.data[k], b.data[k])
	}

	return out, nil
}

// Broadcast computes out[i,j] = fn(a[i,j], s) or fn(s, a[i,j]) when
// scalarLeft is true. Operand order is preserved; fn need not be commutative.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Broadcast[T Element](a *Dense[T], s T, scalarLeft bool, fn func(x, y T) T) (*Dense[T], error) {
	if a == nil {
		return nil, matrixErrorf("Broadcast", ErrNilMatrix)
	}
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for k, v := range a.data {
		if scalarLeft {
			out.data[k] = fn(s, v)
		} else {
			out.data[k] = fn(v, s)
		}
	}

	return out, nil
}

// NewFilled returns an r×c Dense with every cell set to v.
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func NewFilled[T Element](rows, cols int, v T) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewFilled", err)
	}
	if !IsZero(v) {
		d.Fill(v)
	}

	return d, nil
}

// CountNonZero returns the number of cells that differ from the identity.
// Complexity: O(r*c).
func CountNonZero[T Element](a *Dense[T]) int {
	n := 0
	for _, v := range a.data {
		if !IsZero(v) {
			n++
		}
	}

	return n
}
