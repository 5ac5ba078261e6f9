package swlz

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/internal/options"
	"github.com/arloliu/seqent/statespace"
)

type config struct {
	matcher          Matcher
	minHistory       int
	includeTruncated bool
	parallelism      int
}

// Option configures the SWLZ estimator.
type Option = options.Option[*config]

func defaultConfig() *config {
	return &config{
		matcher:     NewAutomatonMatcher(),
		minHistory:  1,
		parallelism: 1,
	}
}

// WithMatcher selects the match-index strategy. The default is
// AutomatonMatcher; HashChainMatcher is the alternative.
func WithMatcher(m Matcher) Option {
	return options.New(func(c *config) error {
		if m == nil {
			return errs.ErrNoMatcher
		}
		c.matcher = m

		return nil
	})
}

// WithMinHistory sets the warm-up policy: records are only emitted for
// positions preceded by at least h symbols of history. The default of 1
// admits every position with non-empty history; raise it to discard early
// positions whose matches are bounded by a short history.
func WithMinHistory(h int) Option {
	return options.New(func(c *config) error {
		if h < 1 {
			return fmt.Errorf("%w: minimum history %d (must be >= 1)", errs.ErrInsufficientData, h)
		}
		c.minHistory = h

		return nil
	})
}

// WithTruncatedMatches controls the tail policy. A match run that reaches the
// final symbol was cut off by the end of the sequence, so its length is only
// a lower bound on the ideal unbounded match; by default such records are
// marked invalid. Pass true to include them in aggregation anyway.
func WithTruncatedMatches(include bool) Option {
	return options.NoError(func(c *config) {
		c.includeTruncated = include
	})
}

// WithParallelism splits match queries across up to n goroutines when the
// configured matcher exposes an immutable index (ParallelMatcher). Matchers
// without one silently stay sequential. n of 0 uses GOMAXPROCS.
func WithParallelism(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: parallelism %d", errs.ErrInsufficientData, n)
		}
		c.parallelism = n

		return nil
	})
}

// Estimate is the aggregated SWLZ result.
type Estimate struct {
	// Rate is the entropy-rate estimate log2(MaxPosition) / MeanMatchLength,
	// in bits per symbol.
	Rate float64

	// MeanMatchLength is the average match length over valid records.
	MeanMatchLength float64

	// MaxPosition is the 1-based position of the last valid record.
	MaxPosition int

	// Included is the number of valid records aggregated.
	Included int
}

// Records computes the full Match Record sequence for seq, streamed lazily in
// position order.
//
// Records are emitted for every position with at least the configured
// minimum history. A record is valid when a match of length >= 1 exists and,
// unless truncated matches are admitted, the run stops before the final
// symbol of the sequence.
//
// Returns:
//   - iter.Seq[MatchRecord]: Lazy record stream; safe to re-range.
//   - error: errs.ErrEmptySequence, errs.ErrUnknownSymbol, or option errors.
func Records(seq []statespace.Symbol, space *statespace.Space, opts ...Option) (iter.Seq[MatchRecord], error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	idx, err := space.Indices(seq)
	if err != nil {
		return nil, err
	}

	lengths := matchLengths(idx, cfg)
	n := len(idx)

	return func(yield func(MatchRecord) bool) {
		for i := cfg.minHistory; i < n; i++ {
			l := lengths[i]
			valid := l >= 1 && (cfg.includeTruncated || i+l < n)
			rec := MatchRecord{Position: i + 1, Length: l, Valid: valid}
			if !yield(rec) {
				return
			}
		}
	}, nil
}

// EstimateRate aggregates the valid Match Records of seq into the scalar
// entropy-rate estimate.
//
// Returns:
//   - *Estimate: Rate plus aggregation diagnostics.
//   - error: errs.ErrInsufficientData for sequences shorter than 2 symbols
//     or without any valid record, errs.ErrUndefinedEstimate when the
//     aggregate is degenerate (last valid position <= 1 or zero mean match
//     length), or validation/option errors.
func EstimateRate(seq []statespace.Symbol, space *statespace.Space, opts ...Option) (*Estimate, error) {
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d",
			errs.ErrInsufficientData, len(seq))
	}

	records, err := Records(seq, space, opts...)
	if err != nil {
		return nil, err
	}

	var (
		included int
		totalLen int
		maxPos   int
	)
	for rec := range records {
		if !rec.Valid {
			continue
		}
		included++
		totalLen += rec.Length
		maxPos = rec.Position
	}

	if included == 0 {
		return nil, fmt.Errorf("%w: no valid match records", errs.ErrInsufficientData)
	}

	mean := float64(totalLen) / float64(included)
	if maxPos <= 1 || mean == 0 {
		return nil, fmt.Errorf("%w: max position %d, mean match length %g",
			errs.ErrUndefinedEstimate, maxPos, mean)
	}

	return &Estimate{
		Rate:            math.Log2(float64(maxPos)) / mean,
		MeanMatchLength: mean,
		MaxPosition:     maxPos,
		Included:        included,
	}, nil
}

func matchLengths(idx []int, cfg *config) []int {
	if cfg.parallelism != 1 {
		if pm, ok := cfg.matcher.(ParallelMatcher); ok {
			return pm.MatchLengthsParallel(idx, cfg.parallelism)
		}
	}

	return cfg.matcher.MatchLengths(idx)
}
