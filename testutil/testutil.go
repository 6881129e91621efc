package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with random values in range [-1, 1).
// Locks only once per call (preferred over generating values in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()*2 - 1
	}
}

// UniformVector returns a vector with components in [-1, 1).
func (r *RNG) UniformVector(dimensions int) []float64 {
	v := make([]float64, dimensions)
	r.FillUniform(v)
	return v
}

// UniformVector32 returns a float32 vector with components in [-1, 1).
func (r *RNG) UniformVector32(dimensions int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]float32, dimensions)
	for i := range v {
		v[i] = r.rand.Float32()*2 - 1
	}
	return v
}

// UnitVector returns a random vector of magnitude 1.
func (r *RNG) UnitVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float64, dimensions)
	for {
		var norm float64
		for i := range v {
			v[i] = r.rand.NormFloat64()
			norm += v[i] * v[i]
		}
		if norm == 0 {
			continue
		}
		inv := 1 / math.Sqrt(norm)
		for i := range v {
			v[i] *= inv
		}
		return v
	}
}

// FlatSet returns num vectors of the given dimensionality in one row-major slice.
func (r *RNG) FlatSet(num, dimensions int) []float64 {
	set := make([]float64, num*dimensions)
	r.FillUniform(set)
	return set
}

// QuantizedFlatSet returns a row-major set whose components are drawn from
// {-1, 0, 1}. Small value alphabets produce duplicate rows, i.e. score ties.
func (r *RNG) QuantizedFlatSet(num, dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := make([]float64, num*dimensions)
	for i := range set {
		set[i] = float64(r.rand.Intn(3) - 1)
	}
	return set
}

// Row returns row i of a row-major set.
func Row(set []float64, dimensions, i int) []float64 {
	return set[i*dimensions : (i+1)*dimensions]
}

// ExactTopK ranks every row with score (higher is better) using a stable
// sort and returns the first k indices. It is the brute-force reference
// for top-K tests.
func ExactTopK(query, set []float64, dimensions, k int, score func(a, b []float64) float64) []uint32 {
	n := len(set) / dimensions
	type pair struct {
		idx   uint32
		score float64
	}
	pairs := make([]pair, n)
	for i := range pairs {
		pairs[i] = pair{idx: uint32(i), score: score(query, Row(set, dimensions, i))}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i].score, pairs[j].score
		if math.IsNaN(a) || math.IsNaN(b) {
			return !math.IsNaN(a) && math.IsNaN(b)
		}
		return a > b
	})
	if k > n {
		k = n
	}
	out := make([]uint32, k)
	for i := range out {
		out[i] = pairs[i].idx
	}
	return out
}
