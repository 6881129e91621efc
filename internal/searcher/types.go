package searcher

import "math"

// ScoredIndex pairs a row index of a vector set with its similarity score.
type ScoredIndex struct {
	Index uint32
	Score float64
}

// Better reports whether a ranks strictly before b.
func Better(a, b ScoredIndex) bool {
	aNaN, bNaN := math.IsNaN(a.Score), math.IsNaN(b.Score)
	switch {
	case aNaN && bNaN:
		return a.Index < b.Index
	case aNaN:
		return false
	case bNaN:
		return true
	case a.Score != b.Score:
		return a.Score > b.Score
	default:
		return a.Index < b.Index
	}
}
