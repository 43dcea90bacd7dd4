// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and the structured nonconformance error.
// All kernel entry points return these sentinels (possibly wrapped with the
// operation name) and tests MUST check them via errors.Is / errors.As.
// No entry point panics on user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/matrix"
)

// ERROR TAXONOMY
// --------------
// All conditions are local, synchronous and non-retryable. Every failure
// aborts the requested operation and leaves all inputs unmodified.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> conformance -> cancellation.

var (
	// ErrInvalidDimension is returned when a negative row/column count (or a
	// negative capacity) is requested. It is the same sentinel as
	// matrix.ErrInvalidDimensions so both packages match with one errors.Is.
	ErrInvalidDimension = matrix.ErrInvalidDimensions

	// ErrOutOfRange is returned by At for indices outside the shape.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNilOperator indicates that a nil BinaryOp was passed to Apply/ApplyScalar.
	ErrNilOperator = errors.New("sparse: nil operator")

	// ErrUnknownPolicy indicates a BinaryOp whose Policy is none of
	// PolicyUnion, PolicyIntersection, PolicyDense.
	ErrUnknownPolicy = errors.New("sparse: unknown merge policy")

	// ErrNonconformant marks a shape mismatch between two operands of a
	// binary operation. The concrete error is *NonconformantError.
	ErrNonconformant = errors.New("sparse: nonconformant arguments")

	// ErrCancelled signals that cooperative cancellation was observed in the
	// middle of a merge. The partial result is discarded.
	ErrCancelled = errors.New("sparse: operation cancelled")

	// ErrInvalidStructure indicates raw CSC buffers that break the container
	// invariants (colptr shape, ordering, row bounds).
	ErrInvalidStructure = errors.New("sparse: invalid compressed-column structure")
)

// NonconformantError carries the operator name and both operand shapes.
// It matches ErrNonconformant and matrix.ErrDimensionMismatch via errors.Is.
type NonconformantError struct {
	Op           string // operator name, e.g. "operator +" or "quotient"
	ARows, ACols int    // shape of the left operand
	BRows, BCols int    // shape of the right operand
}

// Error implements error.
func (e *NonconformantError) Error() string {
	return fmt.Sprintf("sparse: %s: nonconformant arguments (op1 is %dx%d, op2 is %dx%d)",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Unwrap exposes both sentinels to errors.Is.
func (e *NonconformantError) Unwrap() []error {
	return []error{ErrNonconformant, matrix.ErrDimensionMismatch}
}

// sparseErrorf tags an error with the public entry point name.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cancelledErrorf builds the cancellation error; it matches both ErrCancelled
// and the context cause (context.Canceled / context.DeadlineExceeded).
func cancelledErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrCancelled, cause)
}
