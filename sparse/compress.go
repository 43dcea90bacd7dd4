// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"

	"github.com/katalvlaran/lvsparse/matrix"
)

// Compress rewrites the buffers in place and returns how many stored entries
// were removed.
// MAIN DESCRIPTION:
//   - force=true: drop every stored entry equal to the identity, then trim.
//   - force=false: the caller asserts there are no identity entries; only the
//     capacity is trimmed to nnz. Explicit identity values survive.
//
// Implementation:
//   - Stage 1 (force only): single forward pass with a write cursor k; the old
//     colptr[j+1] is read before being overwritten.
//   - Stage 2: reallocate rowidx/values to exactly nnz when over-allocated.
//
// Behavior highlights:
//   - Never changes rows/cols; never reorders surviving entries.
//
// Complexity:
//   - Time O(cols + nnz), Space O(nnz) for the trimmed buffers.
func (m *Matrix[T]) Compress(force bool) int {
	nnz := m.NNZ()
	removed := 0
	if force {
		k, start := 0, 0
		var j, p, end int
		for j = 0; j < m.cols; j++ {
			end = m.colptr[j+1] // old end of column j
			for p = start; p < end; p++ {
				if matrix.IsZero(m.values[p]) {
					continue
				}
				m.rowidx[k] = m.rowidx[p]
				m.values[k] = m.values[p]
				k++
			}
			start = end
			m.colptr[j+1] = k
		}
		removed = nnz - k
		nnz = k
	}
	if len(m.rowidx) != nnz {
		m.rowidx = slices.Clone(m.rowidx[:nnz])
		m.values = slices.Clone(m.values[:nnz])
	}

	return removed
}
