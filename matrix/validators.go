// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/index checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match them uniformly via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Validators take the non-generic Shaped interface so the same guard serves
//    dense and sparse operands of any element type.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SameShape reports whether a and b have identical (rows, cols).
// Pure predicate; assumes both are non-nil.
// Complexity: O(1).
func SameShape(a, b Shaped) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for element-wise kernels and compatibility guards.
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDims rejects negative row/column counts.
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateCells rejects shapes whose cell count rows*cols does not fit in an int.
// Assumes rows, cols >= 0.
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateCells(rows, cols int) error {
	if rows > 0 && cols > math.MaxInt/rows {
		return validatorErrorf("ValidateCells", ErrInvalidDimensions)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < rows and 0 ≤ j < cols for the given shape.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(m Shaped, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
