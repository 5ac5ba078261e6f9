// Package errs defines the sentinel errors shared by the seqent estimator
// packages. Callers can match them with errors.Is after any amount of
// wrapping at the call site.
package errs

import "errors"

var (
	// ErrInvalidMethod indicates an unsupported estimation method selector.
	ErrInvalidMethod = errors.New("invalid estimation method")

	// ErrInvalidStationaryStrategy indicates an unsupported stationary-distribution strategy.
	ErrInvalidStationaryStrategy = errors.New("invalid stationary-distribution strategy")

	// ErrInvalidOrder indicates an embedding order below 1.
	ErrInvalidOrder = errors.New("invalid embedding order")

	// ErrEmptyStateSpace indicates a state space with no symbols.
	ErrEmptyStateSpace = errors.New("state space is empty")

	// ErrDuplicateSymbol indicates a state space declaring the same symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol in state space")

	// ErrUnknownSymbol indicates a sequence symbol outside the declared state space.
	ErrUnknownSymbol = errors.New("symbol not in state space")

	// ErrEmptySequence indicates an empty event sequence.
	ErrEmptySequence = errors.New("event sequence is empty")

	// ErrInsufficientData indicates a sequence too short to produce any
	// transition (Markov) or any valid match record (SWLZ).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrMatrixShapeMismatch indicates matrix/vector dimensions that do not agree.
	ErrMatrixShapeMismatch = errors.New("matrix shape mismatch")

	// ErrAmbiguousStationary indicates multiple eigenvalues tied for closest
	// to 1, so no single stationary distribution can be selected.
	ErrAmbiguousStationary = errors.New("ambiguous stationary distribution")

	// ErrUndefinedEstimate indicates a degenerate aggregate (max position <= 1
	// or zero mean match length) for which the entropy rate is undefined.
	ErrUndefinedEstimate = errors.New("entropy-rate estimate undefined")

	// ErrNotStochastic indicates a transition-matrix row that is not a
	// probability distribution (all-zero or summing below 1) where sampling
	// requires one.
	ErrNotStochastic = errors.New("matrix row is not a probability distribution")

	// ErrInvalidCompression indicates an unsupported compression codec type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrNoMatcher indicates a nil matcher strategy.
	ErrNoMatcher = errors.New("no matcher configured")
)
