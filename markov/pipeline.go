package markov

import (
	"fmt"

	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/statespace"
)

// Strategy selects how the stationary distribution is estimated.
type Strategy int

const (
	// StrategyEmpirical uses the relative frequency of each state in the
	// observed (embedded) sequence. Always well-defined.
	StrategyEmpirical Strategy = iota

	// StrategyEigen uses the unit eigenvector of the transposed transition
	// matrix. May come back tagged Degenerate or Ambiguous.
	StrategyEigen
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyEmpirical:
		return "empirical"
	case StrategyEigen:
		return "eigen"
	default:
		return "unknown"
	}
}

// Result carries the scalar entropy rate together with the intermediate
// matrices, so diagnostic consumers can inspect the fit without recomputing
// it. All fields are indexed by the enumeration order of Space.
type Result struct {
	// Rate is the estimated entropy rate in bits per symbol.
	Rate float64

	// Space is the (possibly composite) state enumeration the matrices are
	// indexed by. Equal to the input space for order 1.
	Space *statespace.Space

	// Counts is the transition count matrix of the embedded sequence.
	Counts [][]int

	// Probabilities is the row-normalized transition matrix.
	Probabilities [][]float64

	// Stationary is the stationary-distribution estimate used for Rate. For
	// StrategyEmpirical the status is always StationaryFound; for
	// StrategyEigen a StationaryDegenerate tag with a zero vector flows
	// through to a zero rate so the caller can detect it here.
	Stationary StationaryResult
}

// Estimate runs the full Markov pipeline: order-m embedding, transition
// statistics, stationary-distribution estimation with the given strategy, and
// aggregation into the entropy rate.
//
// An ambiguous eigen spectrum (several eigenvalues tied for closest to 1, as
// periodic chains produce) is surfaced as errs.ErrAmbiguousStationary rather
// than silently resolved; a degenerate one flows through as a zero vector and
// a zero rate, tagged in Result.Stationary.
//
// Returns:
//   - *Result: Rate plus the intermediate matrices.
//   - error: Validation errors from the embedding and counting steps,
//     errs.ErrInvalidStationaryStrategy, or errs.ErrAmbiguousStationary.
func Estimate(seq []statespace.Symbol, space *statespace.Space, order int, strategy Strategy) (*Result, error) {
	composite, err := space.Expand(order)
	if err != nil {
		return nil, err
	}
	embedded, err := space.Embed(seq, order)
	if err != nil {
		return nil, err
	}

	counts, err := TransitionCounts(embedded, composite)
	if err != nil {
		return nil, err
	}
	probs := TransitionProbabilities(counts)

	var stationary StationaryResult
	switch strategy {
	case StrategyEmpirical:
		pi, err := EmpiricalDistribution(embedded, composite)
		if err != nil {
			return nil, err
		}
		stationary = StationaryResult{Status: StationaryFound, Pi: pi}
	case StrategyEigen:
		stationary = EigenDistribution(probs)
		if stationary.Status == StationaryAmbiguous {
			return nil, fmt.Errorf("%w: %d eigenvalues tied for closest to 1",
				errs.ErrAmbiguousStationary, len(stationary.Candidates))
		}
	default:
		return nil, fmt.Errorf("%w: %d (accepted strategies: %s, %s)",
			errs.ErrInvalidStationaryStrategy, strategy, StrategyEmpirical, StrategyEigen)
	}

	rate, err := Rate(probs, stationary.Pi)
	if err != nil {
		return nil, err
	}

	return &Result{
		Rate:          rate,
		Space:         composite,
		Counts:        counts,
		Probabilities: probs,
		Stationary:    stationary,
	}, nil
}
