// SPDX-License-Identifier: MIT

// Package sparse - scalar broadcast engine.
//
// Purpose:
//   - Apply a scalar s to every cell of a sparse matrix, with s on either side
//     of the operator (a OP s, s OP a). Operand order is preserved; the
//     operator is never assumed commutative.
//
// Path selection (evaluated once per call):
//   - z := OP(0, s) (or OP(s, 0)). If z is the identity, implicit cells stay
//     implicit: the pattern (colptr/rowidx) is copied unchanged and only stored
//     values are transformed → *Matrix[T].
//   - Otherwise every implicit cell becomes z, so the result is materialized as
//     a *matrix.Dense[T] filled with z, then stored cells are overwritten.
//
// Compaction on the structure-preserving path is requested only when s drives
// every stored value to the identity: s is the identity and the operator is
// multiplicative (PolicyIntersection, e.g. a * 0). a + 0 and 0 - a keep every
// stored entry, explicit zeros included. Individual products that happen to
// cancel are NOT re-checked, so the result may hold explicit zeros.

package sparse

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsparse/matrix"
)

// Side tells on which side of the operator the scalar appears.
type Side uint8

const (
	// ScalarRight evaluates a OP s.
	ScalarRight Side = iota

	// ScalarLeft evaluates s OP a.
	ScalarLeft
)

// ApplyScalar broadcasts s over a with op.
// MAIN DESCRIPTION:
//   - Returns *Matrix[T] on the structure-preserving path and
//     *matrix.Dense[T] on the structure-expanding path.
//
// Errors:
//   - ErrNilOperator, ErrNilMatrix.
//   - ErrInvalidDimension when the dense result of rows*cols cells cannot be
//     addressed.
//
// Complexity:
//   - Preserving: O(cols + nnz). Expanding: O(rows*cols + nnz).
func ApplyScalar[T matrix.Element](op BinaryOp[T], a *Matrix[T], s T, side Side, opts ...Option) (matrix.Matrix[T], error) {
	if op == nil {
		return nil, sparseErrorf("ApplyScalar", ErrNilOperator)
	}
	if a == nil {
		return nil, sparseErrorf(op.Name(), ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	zero := op.Identity()
	eval := func(v T) T {
		if side == ScalarLeft {
			return op.Apply(s, v)
		}
		return op.Apply(v, s)
	}

	if z := eval(zero); z != zero {
		o.logger.Debug("scalar op densified",
			zap.String("op", op.Name()), zap.Int("rows", a.rows), zap.Int("cols", a.cols))

		d, err := broadcastDense(a, z, eval)
		if err != nil {
			return nil, sparseErrorf(op.Name(), err)
		}

		return d, nil
	}

	r := broadcastSparse(a, eval)
	if (s == zero && op.Policy() == PolicyIntersection) || o.compact {
		if removed := r.Compress(true); removed > 0 {
			o.logger.Debug("compacted result",
				zap.String("op", op.Name()), zap.Int("removed", removed), zap.Int("nnz", r.NNZ()))
		}
	}

	return r, nil
}

// broadcastSparse copies the pattern and maps every stored value.
func broadcastSparse[T matrix.Element](a *Matrix[T], eval func(T) T) *Matrix[T] {
	nnz := a.NNZ()
	r := newMatrix[T](a.rows, a.cols, nnz)
	copy(r.colptr, a.colptr)
	copy(r.rowidx, a.rowidx[:nnz])
	for k := 0; k < nnz; k++ {
		r.values[k] = eval(a.values[k])
	}

	return r
}

// broadcastDense fills every cell with z, then overwrites stored cells.
// Errors: ErrInvalidDimension when rows*cols overflows.
func broadcastDense[T matrix.Element](a *Matrix[T], z T, eval func(T) T) (*matrix.Dense[T], error) {
	d, err := matrix.NewFilled(a.rows, a.cols, z)
	if err != nil {
		return nil, err
	}
	a.Do(func(i, j int, v T) bool {
		_ = d.Set(i, j, eval(v))
		return true
	})

	return d, nil
}

// AddScalar returns a + s.
func AddScalar[T matrix.Element](a *Matrix[T], s T, opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Plus[T](), a, s, ScalarRight, opts...)
}

// SubScalar returns a - s.
func SubScalar[T matrix.Element](a *Matrix[T], s T, opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Minus[T](), a, s, ScalarRight, opts...)
}

// MulScalar returns a * s.
func MulScalar[T matrix.Element](a *Matrix[T], s T, opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Times[T](), a, s, ScalarRight, opts...)
}

// DivScalar returns a / s. Dividing by the identity densifies (0/0 = NaN).
func DivScalar[T matrix.Element](a *Matrix[T], s T, opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Divide[T](), a, s, ScalarRight, opts...)
}

// ScalarAdd returns s + a.
func ScalarAdd[T matrix.Element](s T, a *Matrix[T], opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Plus[T](), a, s, ScalarLeft, opts...)
}

// ScalarSub returns s - a.
func ScalarSub[T matrix.Element](s T, a *Matrix[T], opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Minus[T](), a, s, ScalarLeft, opts...)
}

// ScalarMul returns s * a.
func ScalarMul[T matrix.Element](s T, a *Matrix[T], opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Times[T](), a, s, ScalarLeft, opts...)
}

// ScalarDiv returns s / a. Every implicit cell becomes s/0, so any s densifies.
func ScalarDiv[T matrix.Element](s T, a *Matrix[T], opts ...Option) (matrix.Matrix[T], error) {
	return ApplyScalar(Divide[T](), a, s, ScalarLeft, opts...)
}
