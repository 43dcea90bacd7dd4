// SPDX-License-Identifier: MIT

// Package sparse - binary co-iteration engine.
//
// Purpose:
//   - Compute result = a OP b element-wise for two conformant CSC matrices in a
//     single left-to-right pass: per column, two cursors walk the row indices of
//     a and b in increasing order, and the output cursor only moves forward.
//   - One routine per Policy; operators only supply Apply/Identity/Policy.
//
// Determinism & Safety:
//   - Fixed column order, fixed merge order; no map iteration.
//   - Conformance is checked before any allocation.
//   - ctx is polled once per innermost merge iteration, before that
//     iteration writes anything. On cancellation the in-progress result is
//     dropped; callers never observe a truncated matrix.
//   - Inputs are read-only; the result never aliases their buffers.
//
// Complexity quicksheet:
//   - Union/Intersection: O(cols + nnz(a) + nnz(b)) time.
//   - Dense: O(rows*cols) time (every cell is materialized).

package sparse

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsparse/matrix"
)

// Apply computes a OP b element-wise using the strategy chosen by op.Policy().
// MAIN DESCRIPTION:
//   - Generic entry point behind Add/Sub/Product/Quotient.
//
// Implementation:
//   - Stage 1: validate operator, operands and shapes (no allocation yet).
//   - Stage 2: pre-allocate the result at its upper-bound capacity and merge.
//   - Stage 3: trim (Compress(false)) or compact (WithCompact) the result.
//
// Errors:
//   - ErrNilOperator, ErrNilMatrix (nil operator / operand).
//   - *NonconformantError (matches ErrNonconformant) on shape mismatch.
//   - ErrCancelled (also matches ctx.Err()) when ctx is done mid-merge.
//   - ErrUnknownPolicy when op.Policy() is not a known Policy.
//   - ErrInvalidDimension when a dense-policy result of rows*cols cells
//     cannot be addressed.
//
// A nil ctx is treated as context.Background().
//
// Complexity:
//   - See package quicksheet.
func Apply[T matrix.Element](ctx context.Context, op BinaryOp[T], a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if op == nil {
		return nil, sparseErrorf("Apply", ErrNilOperator)
	}
	name := op.Name()
	if err := checkOperands(name, a, b); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)

	var (
		r   *Matrix[T]
		err error
	)
	switch op.Policy() {
	case PolicyUnion:
		r, err = mergeUnion(ctx, op, a, b, o.explicitZeros)
	case PolicyIntersection:
		r, err = mergeIntersection(ctx, op, a, b)
	case PolicyDense:
		o.logger.Debug("dense accumulation",
			zap.String("op", name), zap.Int("rows", a.rows), zap.Int("cols", a.cols))
		r, err = mergeDense(ctx, op, a, b)
	default:
		return nil, fmt.Errorf("%s: policy %d: %w", name, op.Policy(), ErrUnknownPolicy)
	}
	if err != nil {
		o.logger.Debug("merge aborted", zap.String("op", name), zap.Error(err))
		return nil, err
	}
	finish(r, name, o)

	return r, nil
}

// Add returns a + b (PolicyUnion). Cancellations such as 3 + (-3) are not stored.
func Add[T matrix.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Apply(ctx, Plus[T](), a, b, opts...)
}

// Sub returns a - b (PolicyUnion).
func Sub[T matrix.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Apply(ctx, Minus[T](), a, b, opts...)
}

// Product returns the Hadamard product a .* b (PolicyIntersection).
//
// Notes:
//   - Only rows stored in both operands are evaluated, so x*0 for a
//     non-finite x (NaN/Inf times an implicit zero) is reported as zero.
func Product[T matrix.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Apply(ctx, Times[T](), a, b, opts...)
}

// Quotient returns the Hadamard quotient a ./ b (PolicyDense).
// For floating-point T every cell where both operands are implicit becomes
// 0/0 = NaN and is stored, so memory is O(rows*cols) however sparse a and b are.
func Quotient[T matrix.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Apply(ctx, Divide[T](), a, b, opts...)
}

// finish trims or compacts r according to o and logs what was removed.
func finish[T matrix.Element](r *Matrix[T], name string, o Options) {
	removed := r.Compress(o.compact)
	if removed > 0 {
		o.logger.Debug("compacted result",
			zap.String("op", name), zap.Int("removed", removed), zap.Int("nnz", r.NNZ()))
	}
}

// interrupted polls done without blocking.
func interrupted(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}

// mergeUnion walks the union of both patterns.
// Implementation:
//   - a-only row:  emit OP(x, 0), advance ja.
//   - b-only row:  emit OP(0, y), advance jb.
//   - shared row:  emit OP(x, y), advance both.
//   - emit appends (row, v) unless v is the identity (and keepZeros is off).
//
// Capacity nnz(a)+nnz(b) is an exact upper bound; no reallocation mid-pass.
func mergeUnion[T matrix.Element](ctx context.Context, op BinaryOp[T], a, b *Matrix[T], keepZeros bool) (*Matrix[T], error) {
	r := newMatrix[T](a.rows, a.cols, a.NNZ()+b.NNZ())
	zero := op.Identity()
	done := ctx.Done()

	var (
		j, jx, row           int
		ja, jaMax, jb, jbMax int
		v                    T
	)
	for j = 0; j < a.cols; j++ {
		ja, jaMax = a.colptr[j], a.colptr[j+1]
		jb, jbMax = b.colptr[j], b.colptr[j+1]
		for ja < jaMax || jb < jbMax {
			if interrupted(done) {
				return nil, cancelledErrorf(op.Name(), ctx.Err())
			}
			switch {
			case jb >= jbMax || (ja < jaMax && a.rowidx[ja] < b.rowidx[jb]):
				row, v = a.rowidx[ja], op.Apply(a.values[ja], zero)
				ja++
			case ja >= jaMax || b.rowidx[jb] < a.rowidx[ja]:
				row, v = b.rowidx[jb], op.Apply(zero, b.values[jb])
				jb++
			default:
				row, v = a.rowidx[ja], op.Apply(a.values[ja], b.values[jb])
				ja++
				jb++
			}
			if keepZeros || v != zero {
				r.rowidx[jx] = row
				r.values[jx] = v
				jx++
			}
		}
		r.colptr[j+1] = jx
	}

	return r, nil
}

// mergeIntersection only evaluates rows present in both operands; a column
// stops as soon as either cursor is exhausted since no shared row remains.
// Capacity min(nnz(a), nnz(b)) is an exact upper bound.
func mergeIntersection[T matrix.Element](ctx context.Context, op BinaryOp[T], a, b *Matrix[T]) (*Matrix[T], error) {
	r := newMatrix[T](a.rows, a.cols, min(a.NNZ(), b.NNZ()))
	zero := op.Identity()
	done := ctx.Done()

	var (
		j, jx                int
		ja, jaMax, jb, jbMax int
		v                    T
	)
	for j = 0; j < a.cols; j++ {
		ja, jaMax = a.colptr[j], a.colptr[j+1]
		jb, jbMax = b.colptr[j], b.colptr[j+1]
		for ja < jaMax && jb < jbMax {
			if interrupted(done) {
				return nil, cancelledErrorf(op.Name(), ctx.Err())
			}
			switch {
			case a.rowidx[ja] < b.rowidx[jb]:
				ja++
			case b.rowidx[jb] < a.rowidx[ja]:
				jb++
			default:
				v = op.Apply(a.values[ja], b.values[jb])
				if v != zero {
					r.rowidx[jx] = a.rowidx[ja]
					r.values[jx] = v
					jx++
				}
				ja++
				jb++
			}
		}
		r.colptr[j+1] = jx
	}

	return r, nil
}

// mergeDense evaluates every cell. Each column uses a dense accumulator of
// length rows seeded with OP(0,0); the merge overwrites touched rows, then
// the non-identity cells of the accumulator are appended in row order.
// Capacity is rows*cols when OP(0,0) is not the identity, nnz(a)+nnz(b) otherwise.
func mergeDense[T matrix.Element](ctx context.Context, op BinaryOp[T], a, b *Matrix[T]) (*Matrix[T], error) {
	zero := op.Identity()
	fill := op.Apply(zero, zero)
	capacity := a.NNZ() + b.NNZ()
	if fill != zero {
		if err := matrix.ValidateCells(a.rows, a.cols); err != nil {
			return nil, fmt.Errorf("%s: %dx%d cells: %w", op.Name(), a.rows, a.cols, err)
		}
		capacity = a.rows * a.cols
	}
	r := newMatrix[T](a.rows, a.cols, capacity)
	acc := make([]T, a.rows)
	done := ctx.Done()

	var (
		i, j, jx             int
		ja, jaMax, jb, jbMax int
	)
	for j = 0; j < a.cols; j++ {
		for i = range acc {
			acc[i] = fill
		}
		ja, jaMax = a.colptr[j], a.colptr[j+1]
		jb, jbMax = b.colptr[j], b.colptr[j+1]
		for ja < jaMax || jb < jbMax {
			if interrupted(done) {
				return nil, cancelledErrorf(op.Name(), ctx.Err())
			}
			switch {
			case jb >= jbMax || (ja < jaMax && a.rowidx[ja] < b.rowidx[jb]):
				acc[a.rowidx[ja]] = op.Apply(a.values[ja], zero)
				ja++
			case ja >= jaMax || b.rowidx[jb] < a.rowidx[ja]:
				acc[b.rowidx[jb]] = op.Apply(zero, b.values[jb])
				jb++
			default:
				acc[a.rowidx[ja]] = op.Apply(a.values[ja], b.values[jb])
				ja++
				jb++
			}
		}
		for i = range acc {
			if acc[i] != zero {
				r.rowidx[jx] = i
				r.values[jx] = acc[i]
				jx++
			}
		}
		r.colptr[j+1] = jx
	}

	return r, nil
}
