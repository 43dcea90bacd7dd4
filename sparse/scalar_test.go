// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/sparse"
)

// asSparse FAILS the test unless r is a *sparse.Matrix.
func asSparse(t *testing.T, r matrix.Matrix[float64]) *sparse.Matrix[float64] {
	t.Helper()
	m, ok := r.(*sparse.Matrix[float64])
	require.Truef(t, ok, "expected *sparse.Matrix, got %T", r)

	return m
}

// asDense FAILS the test unless r is a *matrix.Dense.
func asDense(t *testing.T, r matrix.Matrix[float64]) *matrix.Dense[float64] {
	t.Helper()
	d, ok := r.(*matrix.Dense[float64])
	require.Truef(t, ok, "expected *matrix.Dense, got %T", r)

	return d
}

func TestScalar_StructurePreserving(t *testing.T) {
	a := RandomSparse(t, 6, 5, 0.4, 11)

	r, err := sparse.MulScalar(a, 1)
	require.NoError(t, err)
	require.Equal(t, a.Entries(), asSparse(t, r).Entries())

	r, err = sparse.AddScalar(a, 0)
	require.NoError(t, err)
	require.Equal(t, a.Entries(), asSparse(t, r).Entries())

	r, err = sparse.ScalarMul(2, a)
	require.NoError(t, err)
	m := asSparse(t, r)
	require.Equal(t, a.NNZ(), m.NNZ())
	a.Do(func(i, j int, v float64) bool {
		require.Equal(t, 2*v, MustAt[float64](t, m, i, j))
		return true
	})

	// The result never aliases a.
	before := Snap(a)
	m.Compress(true)
	require.Equal(t, before, Snap(a))
}

func TestScalar_AdditiveIdentityKeepsExplicitZeros(t *testing.T) {
	a := MustTriplets(t, 2, 2, tri(0, 0, 0), tri(1, 1, 5))
	require.Equal(t, 2, a.NNZ())

	r, err := sparse.AddScalar(a, 0)
	require.NoError(t, err)
	require.Equal(t, a.Entries(), asSparse(t, r).Entries())

	r, err = sparse.SubScalar(a, 0)
	require.NoError(t, err)
	require.Equal(t, a.Entries(), asSparse(t, r).Entries())

	// 0 - a and -a agree structurally.
	r, err = sparse.ScalarSub(0, a)
	require.NoError(t, err)
	neg, err := sparse.Negate(a)
	require.NoError(t, err)
	require.Equal(t, neg.Entries(), asSparse(t, r).Entries())
	require.Equal(t, 2, asSparse(t, r).NNZ())

	// Multiplying by the identity still clears every stored entry.
	r, err = sparse.MulScalar(a, 0)
	require.NoError(t, err)
	require.Equal(t, 0, asSparse(t, r).NNZ())

	// WithCompact opts into compaction on any structure-preserving path.
	r, err = sparse.AddScalar(a, 0, sparse.WithCompact())
	require.NoError(t, err)
	require.Equal(t, []sparse.Triplet[float64]{tri(1, 1, 5)}, asSparse(t, r).Entries())
}

func TestScalar_DenseResultTooLarge(t *testing.T) {
	a := MustTriplets(t, math.MaxInt/2, 3)
	r, err := sparse.AddScalar(a, 1)
	require.Nil(t, r)
	require.ErrorIs(t, err, sparse.ErrInvalidDimension)
	require.ErrorContains(t, err, "operator +")
}

func TestScalar_MultiplyByZeroCompacts(t *testing.T) {
	a := RandomSparse(t, 4, 4, 0.7, 12)
	for _, run := range []func() (matrix.Matrix[float64], error){
		func() (matrix.Matrix[float64], error) { return sparse.MulScalar(a, 0) },
		func() (matrix.Matrix[float64], error) { return sparse.ScalarMul(0, a) },
	} {
		r, err := run()
		require.NoError(t, err)
		m := asSparse(t, r)
		require.Equal(t, 0, m.NNZ())
		require.Equal(t, 0, m.Cap())
	}
}

func TestScalar_ExpandsToDense(t *testing.T) {
	a := MustTriplets(t, 2, 3, tri(0, 0, 1), tri(1, 2, -4))

	r, err := sparse.AddScalar(a, 2)
	require.NoError(t, err)
	d := asDense(t, r)
	require.Equal(t, []float64{3, 2, 2, 2, 2, -2}, d.RowMajor())

	r, err = sparse.SubScalar(a, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, -1, -1, -1, -1, -5}, asDense(t, r).RowMajor())
}

func TestScalar_OperandOrder(t *testing.T) {
	a := MustTriplets(t, 1, 2, tri(0, 0, 3))

	r, err := sparse.ScalarSub(10, a)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 10}, asDense(t, r).RowMajor())

	r, err = sparse.SubScalar(a, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{-7, -10}, asDense(t, r).RowMajor())

	r, err = sparse.ScalarDiv(6, a)
	require.NoError(t, err)
	d := asDense(t, r)
	require.Equal(t, 2.0, MustAt[float64](t, d, 0, 0))
	require.True(t, math.IsInf(MustAt[float64](t, d, 0, 1), 1))

	r, err = sparse.ScalarAdd(1, a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 1}, asDense(t, r).RowMajor())
}

func TestScalar_DivideByZeroDensifies(t *testing.T) {
	a := MustTriplets(t, 2, 1, tri(0, 0, -2))

	r, err := sparse.DivScalar(a, 0)
	require.NoError(t, err)
	d := asDense(t, r)
	require.True(t, math.IsInf(MustAt[float64](t, d, 0, 0), -1))
	require.True(t, math.IsNaN(MustAt[float64](t, d, 1, 0)))

	// a / s for s != 0 keeps the pattern.
	r, err = sparse.DivScalar(a, 4)
	require.NoError(t, err)
	require.Equal(t, []sparse.Triplet[float64]{tri(0, 0, -0.5)}, asSparse(t, r).Entries())
}

func TestScalar_UnderflowKeepsExplicitZero(t *testing.T) {
	a := MustTriplets(t, 2, 2, tri(0, 0, 1e-200), tri(1, 1, 1))

	r, err := sparse.MulScalar(a, 1e-200)
	require.NoError(t, err)
	m := asSparse(t, r)
	// 1e-400 underflows to 0; s itself is non-zero so nothing is re-checked.
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 0.0, MustAt[float64](t, m, 0, 0))

	r, err = sparse.MulScalar(a, 1e-200, sparse.WithCompact())
	require.NoError(t, err)
	require.Equal(t, 1, asSparse(t, r).NNZ())
}

func TestScalar_Errors(t *testing.T) {
	_, err := sparse.AddScalar[float64](nil, 1)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	_, err = sparse.ApplyScalar[float64](nil, MustTriplets(t, 1, 1), 1.0, sparse.ScalarRight)
	require.ErrorIs(t, err, sparse.ErrNilOperator)
}

func TestScalar_EmptyShapes(t *testing.T) {
	a := MustTriplets(t, 0, 3)
	r, err := sparse.AddScalar(a, 5)
	require.NoError(t, err)
	d := asDense(t, r)
	require.Equal(t, 0, d.Rows())
	require.Equal(t, 3, d.Cols())
}

func TestScalar_MatchesDenseBroadcast(t *testing.T) {
	a := RandomSparse(t, 7, 5, 0.4, 91)
	tests := []struct {
		name string
		run  func(s float64) (matrix.Matrix[float64], error)
		left bool
		fn   func(x, y float64) float64
	}{
		{"a+s", func(s float64) (matrix.Matrix[float64], error) { return sparse.AddScalar(a, s) }, false, add},
		{"a-s", func(s float64) (matrix.Matrix[float64], error) { return sparse.SubScalar(a, s) }, false, sub},
		{"a*s", func(s float64) (matrix.Matrix[float64], error) { return sparse.MulScalar(a, s) }, false, mul},
		{"a/s", func(s float64) (matrix.Matrix[float64], error) { return sparse.DivScalar(a, s) }, false, div},
		{"s+a", func(s float64) (matrix.Matrix[float64], error) { return sparse.ScalarAdd(s, a) }, true, add},
		{"s-a", func(s float64) (matrix.Matrix[float64], error) { return sparse.ScalarSub(s, a) }, true, sub},
		{"s*a", func(s float64) (matrix.Matrix[float64], error) { return sparse.ScalarMul(s, a) }, true, mul},
		{"s/a", func(s float64) (matrix.Matrix[float64], error) { return sparse.ScalarDiv(s, a) }, true, div},
	}
	for _, tc := range tests {
		for _, s := range []float64{0, 1, -2.5} {
			t.Run(fmt.Sprintf("%s/s=%g", tc.name, s), func(t *testing.T) {
				want, err := matrix.Broadcast(a.ToDense(), s, tc.left, tc.fn)
				require.NoError(t, err)

				r, err := tc.run(s)
				require.NoError(t, err)
				got := r
				if m, ok := r.(*sparse.Matrix[float64]); ok {
					require.NoError(t, m.Validate())
					got = m.ToDense()
				}
				if diff := cmp.Diff(want.RowMajor(), got.(*matrix.Dense[float64]).RowMajor(), cmpopts.EquateNaNs()); diff != "" {
					t.Fatalf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}
