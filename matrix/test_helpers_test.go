// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Build small Dense fixtures and read cells with automatic failure.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/matrix"
)

// MustDense CREATES an r×c float64 Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	d, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)

	return d
}

// MustRows BUILDS a Dense from nested rows or fails the test.
func MustRows(t testing.TB, rows ...[]float64) *matrix.Dense[float64] {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Element](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
