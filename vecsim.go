package vecsim

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/vecsim/distance"
	"github.com/hupe1980/vecsim/internal/conv"
	"github.com/hupe1980/vecsim/internal/searcher"
)

// ScoredIndex pairs a row index of a vector set with its cosine similarity.
type ScoredIndex struct {
	Index uint32
	Score float64
}

// VectorSearch computes similarity metrics for vectors of a fixed
// dimensionality. It holds no state beyond its configuration, so a single
// instance may serve any number of calls.
type VectorSearch struct {
	dimensions int
	logger     *Logger
	metrics    MetricsCollector
}

// New creates a VectorSearch for vectors with the given number of dimensions.
func New(dimensions int, optFns ...Option) (*VectorSearch, error) {
	if dimensions <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimensions}
	}

	o := applyOptions(optFns)
	vs := &VectorSearch{
		dimensions: dimensions,
		logger:     o.logger.WithDimension(dimensions),
		metrics:    o.metricsCollector,
	}

	vs.logger.Debug("vector search initialized", "kernel", distance.Kernel32())
	return vs, nil
}

// Dimensions returns the configured dimensionality.
func (vs *VectorSearch) Dimensions() int {
	return vs.dimensions
}

// Kernel returns the name of the float32 kernel used by CosineSimilaritySIMD.
func (vs *VectorSearch) Kernel() string {
	return distance.Kernel32()
}

// CosineSimilarity returns dot(a,b) / (‖a‖·‖b‖), or 0 if either vector has
// zero magnitude. The result is not clamped to [-1, 1].
func (vs *VectorSearch) CosineSimilarity(a, b []float64) (float64, error) {
	start := time.Now()
	if err := vs.checkPair(len(a), len(b)); err != nil {
		vs.observe(OpCosine, start, err)
		return 0, err
	}
	score := distance.Cosine(a, b)
	vs.observe(OpCosine, start, nil)
	return score, nil
}

// CosineSimilaritySIMD is the single-precision variant of CosineSimilarity.
// It runs on the kernel selected at startup; all kernels agree with the
// sequential float32 loop up to summation-order rounding.
func (vs *VectorSearch) CosineSimilaritySIMD(a, b []float32) (float32, error) {
	start := time.Now()
	if err := vs.checkPair(len(a), len(b)); err != nil {
		vs.observe(OpCosineSIMD, start, err)
		return 0, err
	}
	score := distance.Cosine32(a, b)
	vs.observe(OpCosineSIMD, start, nil)
	return score, nil
}

// EuclideanDistance returns sqrt(Σ (a_i - b_i)²).
func (vs *VectorSearch) EuclideanDistance(a, b []float64) (float64, error) {
	start := time.Now()
	if err := vs.checkPair(len(a), len(b)); err != nil {
		vs.observe(OpEuclidean, start, err)
		return 0, err
	}
	d := distance.Euclidean(a, b)
	vs.observe(OpEuclidean, start, nil)
	return d, nil
}

// DotProduct returns Σ a_i·b_i.
func (vs *VectorSearch) DotProduct(a, b []float64) (float64, error) {
	start := time.Now()
	if err := vs.checkPair(len(a), len(b)); err != nil {
		vs.observe(OpDot, start, err)
		return 0, err
	}
	p := distance.Dot(a, b)
	vs.observe(OpDot, start, nil)
	return p, nil
}

// NormalizeVector scales v to unit magnitude in place.
// A zero vector is left unchanged. On error v is not modified.
func (vs *VectorSearch) NormalizeVector(v []float64) error {
	start := time.Now()
	if err := vs.checkLen("vector", len(v)); err != nil {
		vs.observe(OpNormalize, start, err)
		return err
	}
	distance.NormalizeInPlace(v)
	vs.observe(OpNormalize, start, nil)
	return nil
}

// BatchCosineSimilarity scores query against each of the count rows of the
// row-major set vectors. scores[i] equals CosineSimilarity(query, row i).
func (vs *VectorSearch) BatchCosineSimilarity(query, vectors []float64, count int) ([]float64, error) {
	start := time.Now()
	scores, err := vs.batch(query, vectors, count)

	vs.metrics.RecordBatch(count, time.Since(start), err)
	vs.logger.LogBatch(context.Background(), count, err)
	return scores, err
}

// FindTopK returns the indices of the k rows most similar to query, best
// first. Equal scores keep ascending index order; NaN scores rank last.
// The result has length min(k, count).
func (vs *VectorSearch) FindTopK(query, vectors []float64, count, k int) ([]uint32, error) {
	ranked, err := vs.FindTopKScored(query, vectors, count, k)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(ranked))
	for i, r := range ranked {
		out[i] = r.Index
	}
	return out, nil
}

// FindTopKScored is like FindTopK but also returns each row's score.
func (vs *VectorSearch) FindTopKScored(query, vectors []float64, count, k int) ([]ScoredIndex, error) {
	start := time.Now()
	ranked, err := vs.topK(query, vectors, count, k)

	vs.metrics.RecordTopK(k, len(ranked), time.Since(start), err)
	vs.logger.LogTopK(context.Background(), count, k, len(ranked), err)
	return ranked, err
}

func (vs *VectorSearch) topK(query, vectors []float64, count, k int) ([]ScoredIndex, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if _, err := conv.IntToUint32(count); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}

	scores, err := vs.batch(query, vectors, count)
	if err != nil {
		return nil, err
	}

	ranked := searcher.TopKScored(scores, k)
	out := make([]ScoredIndex, len(ranked))
	for i, r := range ranked {
		out[i] = ScoredIndex{Index: r.Index, Score: r.Score}
	}
	return out, nil
}

func (vs *VectorSearch) batch(query, vectors []float64, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if err := vs.checkLen("query", len(query)); err != nil {
		return nil, err
	}
	expected, err := conv.MulInt(count, vs.dimensions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}
	if len(vectors) != expected {
		return nil, &ErrDimensionMismatch{Operand: "vectors", Expected: expected, Actual: len(vectors)}
	}

	scores := make([]float64, count)
	distance.CosineBatch(query, vectors, scores)
	return scores, nil
}

func (vs *VectorSearch) checkLen(operand string, n int) error {
	if n != vs.dimensions {
		return &ErrDimensionMismatch{Operand: operand, Expected: vs.dimensions, Actual: n}
	}
	return nil
}

func (vs *VectorSearch) checkPair(n1, n2 int) error {
	if err := vs.checkLen("vec1", n1); err != nil {
		return err
	}
	return vs.checkLen("vec2", n2)
}

func (vs *VectorSearch) observe(op Op, start time.Time, err error) {
	vs.metrics.RecordOp(op, time.Since(start), err)
	vs.logger.LogCall(context.Background(), string(op), err)
}
