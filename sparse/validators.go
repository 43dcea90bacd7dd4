// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Shape/conformance validation used by every binary operation before any
//    buffer is allocated or touched.
//  - Pure predicates plus error construction; nothing here mutates state.

package sparse

import "github.com/katalvlaran/lvsparse/matrix"

// Conformant returns nil when a and b have the same (rows, cols), and a
// *NonconformantError naming op and both shapes otherwise.
// Assumes a and b are non-nil.
// Complexity: O(1).
func Conformant(op string, a, b matrix.Shaped) error {
	if matrix.SameShape(a, b) {
		return nil
	}

	return &NonconformantError{
		Op:    op,
		ARows: a.Rows(), ACols: a.Cols(),
		BRows: b.Rows(), BCols: b.Cols(),
	}
}

// checkOperands – Composite: NotNil(a) → NotNil(b) → Conformant.
// Taking concrete pointers avoids the typed-nil-in-interface trap.
//
// Errors: ErrNilMatrix, *NonconformantError.
// Complexity: O(1).
func checkOperands[T matrix.Element](op string, a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return sparseErrorf(op, ErrNilMatrix)
	}

	return Conformant(op, a, b)
}
