// SPDX-License-Identifier: MIT

// Package matrix is the dense side of the lvsparse kernel.
//
// It provides:
//
//   - Element, the numeric constraint shared by every container
//     (floating-point and complex types).
//   - Shaped and Matrix[T], the read-only interfaces that dense and sparse
//     containers both satisfy.
//   - Dense[T], a row-major r×c buffer with bounds-checked At/Set.
//   - Shape/index validators returning wrapped sentinel errors.
//   - Elementwise and Broadcast, the dense reference semantics that sparse
//     operations agree with cell by cell.
//
// Zero-sized shapes (0×n, n×0) are legal everywhere. Errors are sentinels
// matched with errors.Is; public accessors never panic on user input.
package matrix
