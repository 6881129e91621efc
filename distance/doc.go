// Package distance provides the vector similarity and distance kernels.
//
// The float64 kernels are the canonical path: plain sequential loops whose
// results tests compare against the textbook formulas. The float32 cosine
// kernel dispatches to internal/simd, which picks a lane-parallel or
// hardware-accelerated implementation at startup.
//
// Kernels do not validate lengths. Callers (usually vecsim.VectorSearch)
// must guarantee len(a) == len(b).
//
// # Usage
//
//	sim := distance.Cosine(a, b)
//	d := distance.Euclidean(a, b)
//	distance.NormalizeInPlace(v)
package distance
