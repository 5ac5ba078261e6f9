// Package seqent estimates the entropy rate of a discrete-time,
// discrete-state stochastic process observed as a finite symbol sequence.
//
// Two independent estimators are provided: a finite-order Markov model
// fitted from transition counts, and a sliding-window Lempel-Ziv (SWLZ)
// match-length estimator that needs no explicit model. A compression-bound
// estimate is available as a model-free cross-check.
//
// # Basic Usage
//
// Estimating with the default Markov pipeline:
//
//	space, _ := statespace.New("0", "1")
//	seq := []statespace.Symbol{"0", "1", "1", "0", "1", "0", "0", "1"}
//
//	rate, err := seqent.EstimateRate(seq, space)
//
// Selecting the SWLZ estimator instead:
//
//	rate, err := seqent.EstimateRate(seq, space,
//	    seqent.WithMethod(seqent.MethodSWLZ),
//	)
//
// An order-2 Markov fit with the eigen-based stationary distribution:
//
//	rate, err := seqent.EstimateRate(seq, space,
//	    seqent.WithMethod(seqent.MethodMarkov),
//	    seqent.WithOrder(2),
//	    seqent.WithStationary(markov.StrategyEigen),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the estimator
// packages, covering the common cases. For diagnostics (transition matrices,
// stationary tags, match records) use the markov and swlz packages directly.
package seqent

import (
	"fmt"

	"github.com/arloliu/seqent/compress"
	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/internal/options"
	"github.com/arloliu/seqent/markov"
	"github.com/arloliu/seqent/statespace"
	"github.com/arloliu/seqent/swlz"
)

// Method selects an entropy-rate estimator.
type Method int

const (
	// MethodMarkov fits a finite-order Markov model from transition counts.
	MethodMarkov Method = iota

	// MethodSWLZ runs the sliding-window Lempel-Ziv match-length estimator.
	MethodSWLZ

	// MethodCompressionBound reports compressed bits per symbol as a
	// model-free upper-bound cross-check.
	MethodCompressionBound
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodMarkov:
		return "markov"
	case MethodSWLZ:
		return "swlz"
	case MethodCompressionBound:
		return "compression-bound"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

type config struct {
	method      Method
	order       int
	strategy    markov.Strategy
	compression compress.Type
	swlzOpts    []swlz.Option
}

// Option configures the estimator facade.
type Option = options.Option[*config]

func defaultFacadeConfig() *config {
	return &config{
		method:      MethodMarkov,
		order:       1,
		strategy:    markov.StrategyEmpirical,
		compression: compress.TypeZstd,
	}
}

// invalidMethodError names the accepted selectors so a typo cannot silently
// fall through to a default estimator.
func invalidMethodError(m Method) error {
	return fmt.Errorf("%w: %s (accepted methods: %s, %s, %s)",
		errs.ErrInvalidMethod, m, MethodMarkov, MethodSWLZ, MethodCompressionBound)
}

// WithMethod selects the estimator. The default is MethodMarkov.
func WithMethod(m Method) Option {
	return options.New(func(c *config) error {
		switch m {
		case MethodMarkov, MethodSWLZ, MethodCompressionBound:
			c.method = m
			return nil
		default:
			return invalidMethodError(m)
		}
	})
}

// WithOrder sets the Markov embedding order (default 1). It only applies to
// MethodMarkov.
func WithOrder(order int) Option {
	return options.New(func(c *config) error {
		if order < 1 {
			return fmt.Errorf("%w: %d (must be >= 1)", errs.ErrInvalidOrder, order)
		}
		c.order = order

		return nil
	})
}

// WithStationary sets the Markov stationary-distribution strategy (default
// markov.StrategyEmpirical). It only applies to MethodMarkov.
func WithStationary(s markov.Strategy) Option {
	return options.New(func(c *config) error {
		switch s {
		case markov.StrategyEmpirical, markov.StrategyEigen:
			c.strategy = s
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidStationaryStrategy, s)
		}
	})
}

// WithCompression sets the codec for MethodCompressionBound (default Zstd).
func WithCompression(t compress.Type) Option {
	return options.NoError(func(c *config) {
		c.compression = t
	})
}

// WithSWLZOptions forwards options to the SWLZ estimator (matcher strategy,
// warm-up and truncation policy, parallelism). They only apply to MethodSWLZ.
func WithSWLZOptions(opts ...swlz.Option) Option {
	return options.NoError(func(c *config) {
		c.swlzOpts = append(c.swlzOpts, opts...)
	})
}

// EstimateRate estimates the entropy rate of seq over space with the
// configured method, returning the scalar rate in bits per symbol.
//
// The event sequence is read-only to the estimator and no state is retained
// across calls. For the full diagnostic output of a pipeline, call
// EstimateMarkov, EstimateSWLZ, or swlz.Records directly.
//
// Returns:
//   - float64: The estimated entropy rate.
//   - error: errs.ErrInvalidMethod for unknown selectors, or the validation
//     and degeneracy errors of the selected pipeline.
func EstimateRate(seq []statespace.Symbol, space *statespace.Space, opts ...Option) (float64, error) {
	cfg := defaultFacadeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	switch cfg.method {
	case MethodMarkov:
		res, err := markov.Estimate(seq, space, cfg.order, cfg.strategy)
		if err != nil {
			return 0, err
		}

		return res.Rate, nil
	case MethodSWLZ:
		est, err := swlz.EstimateRate(seq, space, cfg.swlzOpts...)
		if err != nil {
			return 0, err
		}

		return est.Rate, nil
	case MethodCompressionBound:
		return compress.Bound(seq, space, cfg.compression)
	default:
		return 0, invalidMethodError(cfg.method)
	}
}

// EstimateMarkov runs the Markov pipeline and returns its full result,
// including the transition matrices and the tagged stationary estimate.
func EstimateMarkov(seq []statespace.Symbol, space *statespace.Space, opts ...Option) (*markov.Result, error) {
	cfg := defaultFacadeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return markov.Estimate(seq, space, cfg.order, cfg.strategy)
}

// EstimateSWLZ runs the SWLZ estimator and returns its aggregate, including
// the mean match length and the last included position.
func EstimateSWLZ(seq []statespace.Symbol, space *statespace.Space, opts ...swlz.Option) (*swlz.Estimate, error) {
	return swlz.EstimateRate(seq, space, opts...)
}
