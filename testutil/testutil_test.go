package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVector(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVector(32)
	require.Len(t, v, 32)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}

	v32 := rng.UniformVector32(16)
	assert.Len(t, v32, 16)
}

func TestResetReproduces(t *testing.T) {
	rng := NewRNG(7)
	first := rng.UniformVector(8)
	rng.Reset()
	assert.Equal(t, first, rng.UniformVector(8))
	assert.Equal(t, int64(7), rng.Seed())
}

func TestUnitVector(t *testing.T) {
	rng := NewRNG(1)
	v := rng.UnitVector(64)

	var norm float64
	for _, x := range v {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestFlatSet(t *testing.T) {
	rng := NewRNG(2)
	set := rng.FlatSet(5, 3)
	require.Len(t, set, 15)
	assert.Equal(t, set[3:6], Row(set, 3, 1))

	q := rng.QuantizedFlatSet(4, 2)
	for _, x := range q {
		assert.Contains(t, []float64{-1, 0, 1}, x)
	}
}

func TestExactTopK(t *testing.T) {
	dot := func(a, b []float64) float64 {
		var s float64
		for i := range a {
			s += a[i] * b[i]
		}
		return s
	}

	set := []float64{
		1, 0,
		0, 1,
		-1, 0,
		1, 0,
	}
	got := ExactTopK([]float64{1, 0}, set, 2, 3, dot)
	assert.Equal(t, []uint32{0, 3, 1}, got)
	assert.Len(t, ExactTopK([]float64{1, 0}, set, 2, 10, dot), 4)
}
