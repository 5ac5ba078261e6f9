// Package swlz estimates the entropy rate of a symbol sequence with a
// sliding-window Lempel-Ziv match-length estimator, without fitting an
// explicit probabilistic model.
//
// For each position i (1-based) past a configurable warm-up, the engine
// computes L_i: the length of the longest contiguous run starting at i that
// exactly reproduces a run contained entirely in the preceding history, i.e.
// a run starting before i and ending at or before i-1. Match sources never
// reach into position i or beyond. The records aggregate into
//
//	H = log2(max_n) / mean(L_i)
//
// over the valid records, where max_n is the position of the last valid
// record. Long repeated runs mean low surprise and drive the estimate down.
//
// Two exact matcher strategies implement the same Matcher contract:
//
//   - AutomatonMatcher (default): a suffix automaton over the whole sequence
//     with minimal-end-position tracking. O(n) states, O(sum L_i) total query
//     work, and an immutable index that supports splitting the position range
//     across goroutines.
//   - HashChainMatcher: an incrementally built xxhash-keyed k-mer table with
//     verify-extend candidate walks, in the style of classic LZ77 encoders.
//     Exact but with adversarial worst cases; kept for cross-checking.
//
// Both return exact maxima, never lower bounds; ties between equally long
// matches are immaterial since only the length feeds the estimate.
package swlz
