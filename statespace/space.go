package statespace

import (
	"fmt"

	"github.com/arloliu/seqent/errs"
)

// Symbol is a single state label. Composite states produced by Expand are
// also Symbols, with the member labels colon-joined.
type Symbol string

// Space is a finite, ordered enumeration of symbols.
//
// The enumeration order is fixed at construction and determines the row and
// column indexing of every count and probability matrix derived from it.
// A Space is immutable after construction and safe for concurrent use.
type Space struct {
	symbols []Symbol
	index   map[Symbol]int
}

// New creates a state space from the given symbols, preserving their order.
//
// Returns:
//   - *Space: The constructed state space.
//   - error: errs.ErrEmptyStateSpace if no symbols are given, or
//     errs.ErrDuplicateSymbol if a symbol appears more than once.
func New(symbols ...Symbol) (*Space, error) {
	if len(symbols) == 0 {
		return nil, errs.ErrEmptyStateSpace
	}

	s := &Space{
		symbols: make([]Symbol, len(symbols)),
		index:   make(map[Symbol]int, len(symbols)),
	}
	copy(s.symbols, symbols)
	for i, sym := range symbols {
		if _, ok := s.index[sym]; ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateSymbol, sym)
		}
		s.index[sym] = i
	}

	return s, nil
}

// Size returns the number of symbols in the space.
func (s *Space) Size() int {
	return len(s.symbols)
}

// Symbols returns a copy of the symbol enumeration in order.
func (s *Space) Symbols() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)

	return out
}

// Symbol returns the symbol at enumeration index i.
// It panics if i is out of range, matching slice semantics.
func (s *Space) Symbol(i int) Symbol {
	return s.symbols[i]
}

// Index returns the enumeration index of sym and whether it belongs to the space.
func (s *Space) Index(sym Symbol) (int, bool) {
	i, ok := s.index[sym]
	return i, ok
}

// Contains reports whether sym belongs to the space.
func (s *Space) Contains(sym Symbol) bool {
	_, ok := s.index[sym]
	return ok
}

// Indices maps seq to enumeration indices, validating membership.
//
// Symbols outside the space fail fast: the error names the first offending
// symbol and its 1-based position, wrapping errs.ErrUnknownSymbol.
//
// Returns:
//   - []int: One index per sequence position.
//   - error: errs.ErrEmptySequence or errs.ErrUnknownSymbol.
func (s *Space) Indices(seq []Symbol) ([]int, error) {
	if len(seq) == 0 {
		return nil, errs.ErrEmptySequence
	}

	out := make([]int, len(seq))
	for i, sym := range seq {
		idx, ok := s.index[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", errs.ErrUnknownSymbol, sym, i+1)
		}
		out[i] = idx
	}

	return out, nil
}

// Validate checks that every symbol of seq belongs to the space.
func (s *Space) Validate(seq []Symbol) error {
	if len(seq) == 0 {
		return errs.ErrEmptySequence
	}
	for i, sym := range seq {
		if !s.Contains(sym) {
			return fmt.Errorf("%w: %q at position %d", errs.ErrUnknownSymbol, sym, i+1)
		}
	}

	return nil
}
