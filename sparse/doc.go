// Package sparse implements a compressed-column (CSC) sparse matrix kernel:
// a storage format for matrices whose entries are mostly the additive
// identity, plus element-wise binary operations (+, -, Hadamard product and
// quotient), scalar broadcasts and unary operations that preserve sparsity.
//
// The kernel provides:
//
//   - Matrix[T]: the CSC container (colptr, rowidx, values) with At, NNZ,
//     Compress, Clone and iteration. There is no single-element insert; a
//     populated matrix comes from FromDense, FromTriplets or FromCSC, or from
//     an operation.
//   - A single co-iteration engine (Apply) parameterized by a BinaryOp whose
//     Policy selects the output strategy: Union (+, -), Intersection
//     (product) or Dense (quotient).
//   - A scalar broadcast engine (ApplyScalar) that keeps the pattern when
//     OP(0, s) is the identity and materializes a matrix.Dense otherwise.
//   - In-place compound forms (AddInPlace, SubInPlace) that never write a
//     while reading it.
//
// Identity tests are value comparisons, so cancellations such as 3 + (-3)
// are detected at run time and dropped. Binary operations honor
// context cancellation, polled once per merge step; a cancelled operation
// returns ErrCancelled and no partial result.
//
// Every call owns its freshly allocated output and reads its inputs only,
// so concurrent calls on disjoint matrices are safe. The kernel does no
// locking of its own.
//
// Diagnostics go to an optional *zap.Logger (WithLogger); the default is a
// no-op logger.
package sparse
