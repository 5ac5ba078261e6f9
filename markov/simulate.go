package markov

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/statespace"
)

// Simulate draws a length-n event sequence from the row-stochastic matrix p
// over space by forward ancestral sampling: the initial state is drawn from
// the eigen-based stationary distribution of p, then each subsequent state is
// drawn from the transition distribution of the current state.
//
// When the eigen estimate is degenerate or ambiguous, the caller-supplied
// fallback distribution is used for the initial draw instead; fallback may be
// nil if the caller accepts a uniform initial draw in that case.
//
// rng must not be nil; passing a seeded source makes the draw reproducible.
//
// Returns:
//   - []statespace.Symbol: The sampled sequence.
//   - error: errs.ErrMatrixShapeMismatch if p does not match space,
//     errs.ErrInsufficientData if n < 1, or errs.ErrNotStochastic when
//     sampling hits an all-zero or sub-stochastic row.
func Simulate(p [][]float64, space *statespace.Space, n int, fallback []float64, rng *rand.Rand) ([]statespace.Symbol, error) {
	k := space.Size()
	if len(p) != k {
		return nil, fmt.Errorf("%w: matrix has %d rows, state space has %d symbols",
			errs.ErrMatrixShapeMismatch, len(p), k)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: requested sequence length %d", errs.ErrInsufficientData, n)
	}

	initial := fallback
	if res := EigenDistribution(p); res.Status == StationaryFound {
		initial = res.Pi
	}
	if initial == nil {
		initial = make([]float64, k)
		for i := range initial {
			initial[i] = 1 / float64(k)
		}
	}

	cur := sampleIndex(initial, rng.Float64())
	if cur < 0 {
		return nil, fmt.Errorf("%w: initial distribution sums below 1", errs.ErrNotStochastic)
	}

	seq := make([]statespace.Symbol, n)
	seq[0] = space.Symbol(cur)
	for t := 1; t < n; t++ {
		next := sampleIndex(p[cur], rng.Float64())
		if next < 0 {
			return nil, fmt.Errorf("%w: state %q has no outgoing transitions",
				errs.ErrNotStochastic, space.Symbol(cur))
		}
		cur = next
		seq[t] = space.Symbol(cur)
	}

	return seq, nil
}

// sampleIndex walks the cumulative distribution of dist until it covers the
// uniform draw u in [0, 1). Returns -1 when dist sums below u, which signals
// a faulty (all-zero or sub-stochastic) row.
func sampleIndex(dist []float64, u float64) int {
	acc := 0.0
	for i, w := range dist {
		acc += w
		if u < acc {
			return i
		}
	}

	return -1
}
