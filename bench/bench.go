// Package bench times the vecsim kernels with wall-clock instrumentation.
//
// It backs the `vecsim bench` command and the benchmarkOperations /
// benchmarkSIMD calls of the js/wasm build. For statistically sound numbers
// use `go test -bench` instead.
package bench

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/vecsim"
	"github.com/hupe1980/vecsim/internal/mem"
)

// ErrInvalidIterations is returned when iterations is not positive.
var ErrInvalidIterations = errors.New("bench: iterations must be positive")

// Report holds total wall-clock time per operation.
type Report struct {
	Dimensions int
	Iterations int
	Cosine     time.Duration
	Euclidean  time.Duration
	Dot        time.Duration
}

// String renders the report in the layout hosts already parse.
func (r Report) String() string {
	return fmt.Sprintf("Dimensions: %d, Iterations: %d\nCosine: %.2fms\nEuclidean: %.2fms\nDot Product: %.2fms",
		r.Dimensions, r.Iterations, millis(r.Cosine), millis(r.Euclidean), millis(r.Dot))
}

// SIMDReport compares the single-precision kernel with the float64 path.
type SIMDReport struct {
	Kernel  string
	SIMD    time.Duration
	Regular time.Duration
}

// Speedup returns Regular/SIMD, or 0 if the SIMD run was too fast to measure.
func (r SIMDReport) Speedup() float64 {
	if r.SIMD <= 0 {
		return 0
	}
	return float64(r.Regular) / float64(r.SIMD)
}

// String renders the report in the layout hosts already parse.
func (r SIMDReport) String() string {
	return fmt.Sprintf("SIMD: %.2fms, Regular: %.2fms, Speedup: %.2fx",
		millis(r.SIMD), millis(r.Regular), r.Speedup())
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// sink keeps results observable so the timed loops are not optimized away.
var sink float64

// Operations times cosine, euclidean and dot product over sin/cos vectors.
func Operations(dimensions, iterations int, optFns ...vecsim.Option) (Report, error) {
	if iterations <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	vs, err := vecsim.New(dimensions, optFns...)
	if err != nil {
		return Report{}, err
	}

	a, b := sinCos(dimensions)
	r := Report{Dimensions: dimensions, Iterations: iterations}

	r.Cosine, err = timeLoop(iterations, func() (float64, error) { return vs.CosineSimilarity(a, b) })
	if err != nil {
		return Report{}, err
	}
	r.Euclidean, err = timeLoop(iterations, func() (float64, error) { return vs.EuclideanDistance(a, b) })
	if err != nil {
		return Report{}, err
	}
	r.Dot, err = timeLoop(iterations, func() (float64, error) { return vs.DotProduct(a, b) })
	if err != nil {
		return Report{}, err
	}
	return r, nil
}

// SIMD times the single-precision cosine against the float64 cosine on the
// same sin/cos data.
func SIMD(dimensions, iterations int, optFns ...vecsim.Option) (SIMDReport, error) {
	if iterations <= 0 {
		return SIMDReport{}, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	vs, err := vecsim.New(dimensions, optFns...)
	if err != nil {
		return SIMDReport{}, err
	}

	a32 := mem.AllocAlignedFloat32(dimensions)
	b32 := mem.AllocAlignedFloat32(dimensions)
	for i := range a32 {
		a32[i] = float32(math.Sin(float64(float32(i))))
		b32[i] = float32(math.Cos(float64(float32(i))))
	}
	a64 := make([]float64, dimensions)
	b64 := make([]float64, dimensions)
	for i := range a32 {
		a64[i] = float64(a32[i])
		b64[i] = float64(b32[i])
	}

	r := SIMDReport{Kernel: vs.Kernel()}
	r.SIMD, err = timeLoop(iterations, func() (float64, error) {
		s, err := vs.CosineSimilaritySIMD(a32, b32)
		return float64(s), err
	})
	if err != nil {
		return SIMDReport{}, err
	}
	r.Regular, err = timeLoop(iterations, func() (float64, error) { return vs.CosineSimilarity(a64, b64) })
	if err != nil {
		return SIMDReport{}, err
	}
	return r, nil
}

func sinCos(dimensions int) ([]float64, []float64) {
	a := make([]float64, dimensions)
	b := make([]float64, dimensions)
	for i := range a {
		a[i] = math.Sin(float64(i))
		b[i] = math.Cos(float64(i))
	}
	return a, b
}

func timeLoop(iterations int, fn func() (float64, error)) (time.Duration, error) {
	var acc float64
	start := time.Now()
	for i := 0; i < iterations; i++ {
		v, err := fn()
		if err != nil {
			return 0, err
		}
		acc += v
	}
	elapsed := time.Since(start)
	sink = acc
	return elapsed, nil
}
