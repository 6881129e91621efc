//go:build !noasm

package simd

import (
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

func vekAccelerated() bool {
	return vek32.Info().Acceleration
}

func cosineAccelerated(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	dot := vek32.Dot(a, b)
	norm1 := vek32.Dot(a, a)
	norm2 := vek32.Dot(b, b)

	magnitude := math32.Sqrt(norm1) * math32.Sqrt(norm2)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude
}
