// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (triplet lists, seeded random
//     patterns) and a dense oracle for cell-by-cell checks.
//   • Random values are small integers so that cancellations (x + (-x)) are
//     exact and frequent.

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/sparse"
)

// tri is a terse float64 triplet literal.
func tri(i, j int, v float64) sparse.Triplet[float64] {
	return sparse.Triplet[float64]{Row: i, Col: j, Value: v}
}

// MustTriplets BUILDS an r×c sparse matrix from triplets or fails the test.
func MustTriplets(t testing.TB, r, c int, ts ...sparse.Triplet[float64]) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.FromTriplets(r, c, ts)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Element](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomSparse FILLS an r×c matrix with deterministic values in {-3..3}\{0}
// at roughly density*r*c positions.
func RandomSparse(t testing.TB, r, c int, density float64, seed int64) *sparse.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var ts []sparse.Triplet[float64]
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if rng.Float64() >= density {
				continue
			}
			v := float64(rng.Intn(6) - 3)
			if v >= 0 {
				v++ // skip zero
			}
			ts = append(ts, tri(i, j, v))
		}
	}

	return MustTriplets(t, r, c, ts...)
}

// sameValue treats NaN as equal to NaN (0/0 cells of the quotient family).
func sameValue(x, y float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}

	return x == y
}

// RequireOracle CHECKS got(i,j) == fn(a(i,j), b(i,j)) for every cell.
func RequireOracle(t testing.TB, got, a, b *sparse.Matrix[float64], fn func(x, y float64) float64) {
	t.Helper()
	require.Equal(t, a.Rows(), got.Rows())
	require.Equal(t, a.Cols(), got.Cols())
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			want := fn(MustAt[float64](t, a, i, j), MustAt[float64](t, b, i, j))
			have := MustAt[float64](t, got, i, j)
			require.Truef(t, sameValue(want, have), "cell (%d,%d): got %v want %v", i, j, have, want)
		}
	}
}

// CountNonIdentity COUNTS cells where fn(a(i,j), b(i,j)) != 0.
func CountNonIdentity(t testing.TB, a, b *sparse.Matrix[float64], fn func(x, y float64) float64) int {
	t.Helper()
	n := 0
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if fn(MustAt[float64](t, a, i, j), MustAt[float64](t, b, i, j)) != 0 {
				n++
			}
		}
	}

	return n
}

// Snapshot captures pattern + values so tests can assert "input unchanged".
type Snapshot struct {
	Colptr, Rowidx []int
	Entries        []sparse.Triplet[float64]
	Cap            int
}

// Snap TAKES a Snapshot of m.
func Snap(m *sparse.Matrix[float64]) Snapshot {
	cp, ri := m.Pattern()

	return Snapshot{Colptr: cp, Rowidx: ri, Entries: m.Entries(), Cap: m.Cap()}
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }
