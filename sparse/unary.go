// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/lvsparse/matrix"

// Negate returns -a. The pattern is copied unchanged: the negation of the
// identity is the identity, so no entry appears or disappears.
//
// Errors: ErrNilMatrix.
// Complexity: O(cols + nnz).
func Negate[T matrix.Element](a *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, sparseErrorf("Negate", ErrNilMatrix)
	}
	r := a.Clone()
	for k := range r.values {
		r.values[k] = -r.values[k]
	}

	return r, nil
}

// UnaryPlus returns +a, an independent deep copy of a.
//
// Errors: ErrNilMatrix.
// Complexity: O(cols + nnz).
func UnaryPlus[T matrix.Element](a *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, sparseErrorf("UnaryPlus", ErrNilMatrix)
	}

	return a.Clone(), nil
}
