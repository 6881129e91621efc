// Package testutil provides testing utilities for vecsim.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for vectors and flattened vector sets
// and an exact brute-force top-K reference.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := rng.UniformVector(128)          // uniform [-1, 1)
//	set := rng.FlatSet(1000, 128)          // 1000 rows, row-major
//	v32 := rng.UniformVector32(128)        // float32 variant
//
// # Exact Search (Ground Truth)
//
//	idx := testutil.ExactTopK(query, set, dim, k, distance.Cosine)
package testutil
