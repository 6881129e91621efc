package searcher

// TopKScored returns the k best (index, score) pairs, best first.
//
// The result has length min(k, len(scores)); k <= 0 yields an empty slice.
// Indices are positions in scores, which must not exceed the uint32 range.
func TopKScored(scores []float64, k int) []ScoredIndex {
	if k <= 0 || len(scores) == 0 {
		return []ScoredIndex{}
	}
	if k > len(scores) {
		k = len(scores)
	}

	q := NewQueue(k)
	for i, s := range scores {
		q.Push(ScoredIndex{Index: uint32(i), Score: s})
	}
	return q.Drain(make([]ScoredIndex, 0, k))
}
