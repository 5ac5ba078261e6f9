package swlz

// MatchRecord reports the longest-previous-match result for one sequence
// position.
type MatchRecord struct {
	// Position is the 1-based position in the input sequence.
	Position int

	// Length is the exact length of the longest run starting at Position
	// that also occurs entirely within the preceding history. Zero when the
	// symbol at Position never occurred before.
	Length int

	// Valid reports whether the record participates in aggregation under the
	// configured validity policy: a match exists, the position has enough
	// history, and the run does not fall into the final incomplete window.
	Valid bool
}

// Matcher locates longest previous matches for every position of a sequence.
//
// Implementations must return exact maxima: for each position i (0-based),
// the length of the longest run seq[i:i+L] that occurs as a contiguous run
// within seq[:i]. Implementations are interchangeable strategies behind this
// single contract.
type Matcher interface {
	// MatchLengths returns one exact match length per position of seq.
	MatchLengths(seq []int) []int
}

// ParallelMatcher is implemented by matchers whose index is immutable once
// built, so disjoint position ranges can be queried concurrently.
type ParallelMatcher interface {
	Matcher

	// MatchLengthsParallel behaves like MatchLengths but splits the position
	// range across up to workers goroutines after the index is fully built.
	MatchLengthsParallel(seq []int, workers int) []int
}
