// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse sides of the kernel.
// This file intentionally contains ONLY type-level declarations (element
// constraint and the read-only interfaces). Errors live in errors.go,
// the concrete Dense storage in impl_dense.go.
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of numeric types a matrix may hold.
// The additive identity of an Element is its Go zero value, and identity
// tests are value comparisons (x == zero), so NaN is never the identity.
//
// Integer types are deliberately absent: the quotient family evaluates
// identity/identity for implicit cells, which would panic for integers.
type Element interface {
	constraints.Float | constraints.Complex
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Element]() T {
	var z T

	return z
}

// IsZero reports whether v equals the additive identity of T.
// Complexity: O(1).
func IsZero[T Element](v T) bool {
	var z T

	return v == z
}

// Shaped is the minimal surface the conformance validators need.
// Both *Dense[T] and sparse matrices implement it.
type Shaped interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}

// Matrix is a read-only two-dimensional view of T values.
//
// Rationale:
//   - Sparse containers have no public single-element insert, so the shared
//     interface stops at reads; mutation lives on concrete types.
//   - Scalar broadcast may return either a dense or a sparse result; callers
//     type-switch on the concrete type when representation matters.
type Matrix[T Element] interface {
	Shaped

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}
