// Package searcher ranks scored candidates and selects the top K.
//
// Ranking uses a total order over (score, index) pairs:
//   - higher score ranks first
//   - equal scores rank by ascending index (stable with respect to input order)
//   - NaN ranks below every number; NaNs among themselves rank by index
//
// The selection keeps a bounded heap of size k, so it costs O(N log k) and
// returns exactly what a stable descending sort truncated to k would.
package searcher
