// SPDX-License-Identifier: MIT

// Package sparse - compound in-place forms (a += b, a -= b).
//
// a is also an input, so its storage is never written while it is being
// read: the merge runs into a fresh container and the buffers of a are
// replaced only after the merge succeeded. On any error a is untouched.
// The kernel does not lock; callers serialize access to a shared a.

package sparse

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsparse/matrix"
)

// AddInPlace performs a += b.
// Errors: as Add, reported under "operator +=".
func AddInPlace[T matrix.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) error {
	return applyInPlace(ctx, renamedOp[T]{BinaryOp: Plus[T](), name: "operator +="}, a, b, opts...)
}

// SubInPlace performs a -= b.
// Errors: as Sub, reported under "operator -=".
func SubInPlace[T matrix.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) error {
	return applyInPlace(ctx, renamedOp[T]{BinaryOp: Minus[T](), name: "operator -="}, a, b, opts...)
}

// applyInPlace computes op(a, b) into a new container, then swaps its
// buffers into a. rows/cols of a never change (conformance guarantees it).
func applyInPlace[T matrix.Element](ctx context.Context, op BinaryOp[T], a, b *Matrix[T], opts ...Option) error {
	r, err := Apply(ctx, op, a, b, opts...)
	if err != nil {
		return err
	}
	a.colptr, a.rowidx, a.values = r.colptr, r.rowidx, r.values

	gatherOptions(opts...).logger.Debug("in-place update",
		zap.String("op", op.Name()), zap.Int("nnz", a.NNZ()))

	return nil
}
