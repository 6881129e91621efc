package searcher

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topKIndices(scores []float64, k int) []uint32 {
	ranked := TopKScored(scores, k)
	out := make([]uint32, len(ranked))
	for i, r := range ranked {
		out[i] = r.Index
	}
	return out
}

// referenceTopK ranks with a stable sort; NaN goes last.
func referenceTopK(scores []float64, k int) []uint32 {
	pairs := make([]ScoredIndex, len(scores))
	for i, s := range scores {
		pairs[i] = ScoredIndex{Index: uint32(i), Score: s}
	}
	slices.SortStableFunc(pairs, func(a, b ScoredIndex) int {
		aNaN, bNaN := math.IsNaN(a.Score), math.IsNaN(b.Score)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	if k > len(pairs) {
		k = len(pairs)
	}
	out := make([]uint32, k)
	for i := range out {
		out[i] = pairs[i].Index
	}
	return out
}

func TestTopKScored(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		k        int
		expected []uint32
	}{
		{"Simple", []float64{1, 0, -1}, 2, []uint32{0, 1}},
		{"Reversed", []float64{-1, 0, 1}, 3, []uint32{2, 1, 0}},
		{"K larger than count", []float64{0.2, 0.9}, 5, []uint32{1, 0}},
		{"K zero", []float64{0.2, 0.9}, 0, []uint32{}},
		{"K negative", []float64{0.2, 0.9}, -1, []uint32{}},
		{"Empty", []float64{}, 3, []uint32{}},
		{"Ties keep input order", []float64{0.5, 0.7, 0.5, 0.7, 0.5}, 4, []uint32{1, 3, 0, 2}},
		{"NaN sorts last", []float64{math.NaN(), 0.1, -0.3, math.NaN()}, 4, []uint32{1, 2, 0, 3}},
		{"NaN excluded by k", []float64{math.NaN(), -5, math.NaN()}, 1, []uint32{1}},
		{"Infinities", []float64{math.Inf(-1), 0, math.Inf(1)}, 3, []uint32{2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topKIndices(tt.scores, tt.k)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTopKMatchesStableSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(64)
		scores := make([]float64, n)
		for i := range scores {
			switch rng.Intn(10) {
			case 0:
				scores[i] = math.NaN()
			case 1, 2:
				// coarse values force ties
				scores[i] = float64(rng.Intn(3)) / 2
			default:
				scores[i] = rng.Float64()*2 - 1
			}
		}
		k := rng.Intn(n + 3)

		assert.Equal(t, referenceTopK(scores, k), topKIndices(scores, k), "trial %d n=%d k=%d", trial, n, k)
	}
}

func TestTopKScoredOrder(t *testing.T) {
	scores := []float64{0.3, 0.9, 0.1, 0.9, 0.5}
	got := TopKScored(scores, 3)

	require.Len(t, got, 3)
	assert.Equal(t, ScoredIndex{Index: 1, Score: 0.9}, got[0])
	assert.Equal(t, ScoredIndex{Index: 3, Score: 0.9}, got[1])
	assert.Equal(t, ScoredIndex{Index: 4, Score: 0.5}, got[2])

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func BenchmarkTopK(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	scores := make([]float64, 100_000)
	for i := range scores {
		scores[i] = rng.Float64()
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = TopKScored(scores, 10)
	}
}
