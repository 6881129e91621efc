// Package vecsim computes vector similarity metrics and exact top-K nearest
// neighbors over flat vector sets.
//
// vecsim is built to sit behind a foreign-function boundary: a host (a
// JavaScript runtime driving the js/wasm build, or any Go program) owns the
// vector data, optionally in buffers handed out by package memory, and calls
// the engine for scoring. There is no index and no stored vector set; each
// call is a pure function of its arguments and the configured dimensionality.
//
// # Quick Start
//
//	vs, _ := vecsim.New(3)
//
//	sim, _ := vs.CosineSimilarity([]float64{1, 0, 0}, []float64{0, 1, 0}) // 0
//	d, _ := vs.EuclideanDistance([]float64{1, 0, 0}, []float64{0, 1, 0}) // √2
//
//	// Flattened row-major set of 3 vectors.
//	set := []float64{
//	    1, 0, 0,
//	    0, 1, 0,
//	    -1, 0, 0,
//	}
//	top, _ := vs.FindTopK([]float64{1, 0, 0}, set, 3, 2) // [0 1]
//
// # Validation
//
// Every operand must have exactly Dimensions() components and a flattened set
// exactly count*Dimensions(). Violations return *ErrDimensionMismatch (which
// matches ErrDimensionMismatchKind via errors.Is); nothing is truncated,
// padded or partially written.
//
// # Numeric Edge Cases
//
//   - Cosine similarity with a zero-magnitude operand is 0.
//   - Normalizing a zero vector is a no-op.
//   - Scores are never clamped; rounding may leave them marginally outside [-1, 1].
//   - Top-K ranks NaN scores below every number and breaks ties by index.
//
// # Single Precision
//
// CosineSimilaritySIMD works on float32 vectors and runs on the kernel picked
// at startup: a four-lane accumulation loop, or hardware vector units when
// the CPU supports them. Set VECSIM_SIMD=scalar to force the sequential loop.
package vecsim
