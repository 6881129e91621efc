package vecsim_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecsim"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &vecsim.BasicMetricsCollector{}
	vs, err := vecsim.New(2, vecsim.WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = vs.CosineSimilarity([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	_, err = vs.DotProduct([]float64{1, 0}, []float64{0})
	require.Error(t, err)

	set := []float64{1, 0, 0, 1}
	_, err = vs.BatchCosineSimilarity([]float64{1, 0}, set, 2)
	require.NoError(t, err)
	_, err = vs.FindTopK([]float64{1, 0}, set, 2, 1)
	require.NoError(t, err)
	_, err = vs.FindTopK([]float64{1, 0}, set, 2, -1)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.OpCount)
	assert.Equal(t, int64(1), stats.OpErrors)
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(2), stats.BatchRows)
	assert.Equal(t, int64(0), stats.BatchErrors)
	assert.Equal(t, int64(2), stats.TopKCount)
	assert.Equal(t, int64(1), stats.TopKErrors)
	assert.Equal(t, int64(1), stats.TopKReturned)
	assert.GreaterOrEqual(t, stats.TopKAvgNanos, int64(0))
}

func TestNilOptionsFallBackToNoop(t *testing.T) {
	vs, err := vecsim.New(2, vecsim.WithMetricsCollector(nil), vecsim.WithLogger(nil), nil)
	require.NoError(t, err)

	_, err = vs.CosineSimilarity([]float64{1, 0}, []float64{1})
	assert.Error(t, err)
}

func TestLoggerRecordsRejectedCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := vecsim.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	vs, err := vecsim.New(3, vecsim.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "vector search initialized")
	assert.Contains(t, buf.String(), "dimension=3")

	_, err = vs.EuclideanDistance([]float64{1, 2, 3}, []float64{1})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "operation rejected")
	assert.Contains(t, buf.String(), "op=euclidean")

	_, err = vs.FindTopK([]float64{1, 0, 0}, []float64{1, 0, 0}, 1, 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "top-k completed")
}

func TestNoopLoggerIsSilent(t *testing.T) {
	l := vecsim.NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}
