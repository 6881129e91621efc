// Package simd provides the single-precision cosine kernels and the
// capability check that selects one of them at startup.
//
// # Kernels
//
//   - scalar: sequential float32 accumulation (reference path)
//   - lanes4: four lane accumulators over groups of 4 components plus a
//     scalar remainder loop
//   - accelerated: hardware vector units via vek32 (AVX2+FMA on x86-64)
//
// All kernels compute dot(a,b) / (sqrt(‖a‖²)·sqrt(‖b‖²)) and return 0 when
// that magnitude product is zero. They differ only in summation order.
//
// Runtime CPU feature detection selects the best available kernel.
// Set VECSIM_SIMD=scalar|lanes4|accelerated to override the choice, or
// build with -tags noasm to disable the accelerated kernel.
package simd
