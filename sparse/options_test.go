// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsparse/sparse"
)

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { sparse.WithLogger(nil) })
}

func TestOptions_NilOptionIgnored(t *testing.T) {
	a := MustTriplets(t, 1, 1, tri(0, 0, 1))
	r, err := sparse.Add(t.Context(), a, a, nil)
	require.NoError(t, err)
	require.Equal(t, 2.0, MustAt[float64](t, r, 0, 0))
}

func TestWithLogger_ReportsKernelEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := sparse.WithLogger(zap.New(core))

	a := MustTriplets(t, 2, 2, tri(0, 0, 3), tri(1, 1, 5))
	b := MustTriplets(t, 2, 2, tri(0, 0, -3))

	_, err := sparse.Add(t.Context(), a, b, log, sparse.WithExplicitZeros(), sparse.WithCompact())
	require.NoError(t, err)
	entries := logs.FilterMessage("compacted result").All()
	require.Len(t, entries, 1)
	require.Equal(t, "operator +", entries[0].ContextMap()["op"])
	require.EqualValues(t, 1, entries[0].ContextMap()["removed"])

	_, err = sparse.Quotient(t.Context(), a, b, log)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("dense accumulation").Len())

	_, err = sparse.AddScalar(a, 1, log)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("scalar op densified").Len())

	require.NoError(t, sparse.AddInPlace(t.Context(), a, b, log))
	require.Equal(t, 1, logs.FilterMessage("in-place update").Len())

	_, err = sparse.Add(t.Context(), a, MustTriplets(t, 3, 3), log)
	require.Error(t, err)
	require.Equal(t, 0, logs.FilterMessage("merge aborted").Len(), "shape errors are reported before merging")
}

func TestWithLogger_TestSink(t *testing.T) {
	// zaptest routes kernel diagnostics into the test log.
	a := RandomSparse(t, 4, 4, 0.5, 81)
	_, err := sparse.Quotient(t.Context(), a, a, sparse.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
}
