package markov

import (
	"fmt"

	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/statespace"
)

// TransitionCounts counts the observed one-step transitions of seq over the
// full enumeration of space.
//
// The result is a Size x Size matrix whose (i, j) entry is the number of
// times state j immediately follows state i in seq. States never visited as
// a source keep an all-zero row; the sum of all entries is len(seq) - 1.
//
// Returns:
//   - [][]int: The transition count matrix in enumeration order.
//   - error: errs.ErrInsufficientData if len(seq) < 2, or
//     errs.ErrUnknownSymbol for symbols outside the space.
func TransitionCounts(seq []statespace.Symbol, space *statespace.Space) ([][]int, error) {
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols for a transition, got %d",
			errs.ErrInsufficientData, len(seq))
	}

	idx, err := space.Indices(seq)
	if err != nil {
		return nil, err
	}

	n := space.Size()
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	for t := 1; t < len(idx); t++ {
		counts[idx[t-1]][idx[t]]++
	}

	return counts, nil
}

// TransitionProbabilities row-normalizes a transition count matrix into a
// row-stochastic matrix.
//
// Every row of the result sums to exactly 1, except rows whose counts sum to
// zero: those stay all-zero instead of propagating a division by zero.
func TransitionProbabilities(counts [][]int) [][]float64 {
	probs := make([][]float64, len(counts))
	for i, row := range counts {
		probs[i] = make([]float64, len(row))
		total := 0
		for _, c := range row {
			total += c
		}
		if total == 0 {
			continue
		}
		for j, c := range row {
			probs[i][j] = float64(c) / float64(total)
		}
	}

	return probs
}
