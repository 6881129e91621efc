package distance

import (
	"math"

	"github.com/hupe1980/vecsim/internal/simd"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var product float64
	for i := range a {
		product += a[i] * b[i]
	}
	return product
}

// Cosine calculates dot(a,b) / (‖a‖·‖b‖).
//
// If the magnitude product is zero the result is 0. The result is not
// clamped to [-1, 1]; rounding may push it marginally outside.
func Cosine(a, b []float64) float64 {
	var dot, norm1, norm2 float64
	for i := range a {
		dot += a[i] * b[i]
		norm1 += a[i] * a[i]
		norm2 += b[i] * b[i]
	}

	magnitude := math.Sqrt(norm1) * math.Sqrt(norm2)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude
}

// SquaredEuclidean calculates Σ (a_i - b_i)².
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// Norm returns the L2 magnitude of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// NormalizeInPlace divides every component of v by its magnitude.
// Returns false and leaves v untouched if v has zero magnitude.
func NormalizeInPlace(v []float64) bool {
	magnitude := Norm(v)
	if magnitude == 0 {
		return false
	}
	for i := range v {
		v[i] /= magnitude
	}
	return true
}

// CosineBatch writes Cosine(query, row_i) into out[i] for each row of the
// flattened row-major set. len(set) must be len(out)*len(query).
func CosineBatch(query, set []float64, out []float64) {
	dim := len(query)
	for i := range out {
		offset := i * dim
		out[i] = Cosine(query, set[offset:offset+dim])
	}
}

// Cosine32 calculates the single-precision cosine similarity using the
// kernel selected at startup (lane-parallel or hardware-accelerated).
func Cosine32(a, b []float32) float32 {
	return simd.Cosine(a, b)
}

// Kernel32 returns the name of the active float32 kernel.
func Kernel32() string {
	return simd.Active().String()
}
