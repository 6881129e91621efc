//go:build noasm

package simd

func vekAccelerated() bool {
	return false
}

// cosineAccelerated is never selected under noasm; it mirrors the lane path.
func cosineAccelerated(a, b []float32) float32 {
	return cosineLanes4(a, b)
}
