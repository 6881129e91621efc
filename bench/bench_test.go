package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecsim"
)

func TestOperations(t *testing.T) {
	r, err := Operations(64, 50)
	require.NoError(t, err)

	assert.Equal(t, 64, r.Dimensions)
	assert.Equal(t, 50, r.Iterations)
	assert.GreaterOrEqual(t, r.Cosine, time.Duration(0))

	out := r.String()
	assert.True(t, strings.HasPrefix(out, "Dimensions: 64, Iterations: 50\n"))
	assert.Contains(t, out, "Cosine: ")
	assert.Contains(t, out, "Euclidean: ")
	assert.Contains(t, out, "Dot Product: ")
}

func TestOperationsErrors(t *testing.T) {
	_, err := Operations(8, 0)
	assert.ErrorIs(t, err, ErrInvalidIterations)

	_, err = Operations(0, 10)
	var id *vecsim.ErrInvalidDimension
	assert.ErrorAs(t, err, &id)
}

func TestSIMD(t *testing.T) {
	r, err := SIMD(128, 50)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Kernel)
	assert.Contains(t, r.String(), "SIMD: ")
	assert.Contains(t, r.String(), "Speedup: ")

	_, err = SIMD(128, -1)
	assert.ErrorIs(t, err, ErrInvalidIterations)
}

func TestReportFormatting(t *testing.T) {
	r := Report{
		Dimensions: 3,
		Iterations: 10,
		Cosine:     1500 * time.Microsecond,
		Euclidean:  2 * time.Millisecond,
		Dot:        250 * time.Microsecond,
	}
	assert.Equal(t, "Dimensions: 3, Iterations: 10\nCosine: 1.50ms\nEuclidean: 2.00ms\nDot Product: 0.25ms", r.String())

	s := SIMDReport{SIMD: time.Millisecond, Regular: 3 * time.Millisecond}
	assert.InDelta(t, 3.0, s.Speedup(), 1e-12)
	assert.Equal(t, "SIMD: 1.00ms, Regular: 3.00ms, Speedup: 3.00x", s.String())
	assert.Equal(t, 0.0, SIMDReport{}.Speedup())
}
