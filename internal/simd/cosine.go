package simd

import "github.com/chewxy/math32"

// Cosine computes the float32 cosine similarity with the active kernel.
//
// SAFETY: This function assumes len(a) == len(b).
// Callers MUST validate lengths; kernels index b by the length of a.
func Cosine(a, b []float32) float32 {
	return cosineImpl(a, b)
}

// CosineWith computes the cosine similarity with a specific kernel.
// It returns false if the kernel is not available on this CPU.
func CosineWith(k Kernel, a, b []float32) (float32, bool) {
	if !Available(k) {
		return 0, false
	}
	return kernelFunc(k)(a, b), true
}

func cosineScalar(a, b []float32) float32 {
	var dot, norm1, norm2 float32
	for i := range a {
		dot += a[i] * b[i]
		norm1 += a[i] * a[i]
		norm2 += b[i] * b[i]
	}
	return finish(dot, norm1, norm2)
}

func cosineLanes4(a, b []float32) float32 {
	n := len(a)
	b = b[:n]

	var d0, d1, d2, d3 float32
	var x0, x1, x2, x3 float32
	var y0, y1, y2, y3 float32

	i := 0
	for ; i <= n-4; i += 4 {
		a0, a1, a2, a3 := a[i], a[i+1], a[i+2], a[i+3]
		b0, b1, b2, b3 := b[i], b[i+1], b[i+2], b[i+3]

		d0 += a0 * b0
		d1 += a1 * b1
		d2 += a2 * b2
		d3 += a3 * b3

		x0 += a0 * a0
		x1 += a1 * a1
		x2 += a2 * a2
		x3 += a3 * a3

		y0 += b0 * b0
		y1 += b1 * b1
		y2 += b2 * b2
		y3 += b3 * b3
	}

	dot := (d0 + d1) + (d2 + d3)
	norm1 := (x0 + x1) + (x2 + x3)
	norm2 := (y0 + y1) + (y2 + y3)

	for ; i < n; i++ {
		dot += a[i] * b[i]
		norm1 += a[i] * a[i]
		norm2 += b[i] * b[i]
	}

	return finish(dot, norm1, norm2)
}

func finish(dot, norm1, norm2 float32) float32 {
	magnitude := math32.Sqrt(norm1) * math32.Sqrt(norm2)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude
}
