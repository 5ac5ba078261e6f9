package statespace

import (
	"fmt"
	"strings"

	"github.com/arloliu/seqent/errs"
)

// compositeSep joins member labels inside a composite-state key.
const compositeSep = ":"

// CompositeKey serializes an ordered tuple of symbols into a single
// composite-state key. Keys preserve tuple order, so distinct tuples always
// produce distinct keys.
func CompositeKey(symbols ...Symbol) Symbol {
	if len(symbols) == 1 {
		return symbols[0]
	}

	parts := make([]string, len(symbols))
	for i, sym := range symbols {
		parts[i] = string(sym)
	}

	return Symbol(strings.Join(parts, compositeSep))
}

// Expand returns the order-m composite space: the full Cartesian product of
// the base space with itself m times, enumerated lexicographically over the
// base ordering (first tuple member most significant).
//
// The enumeration is deterministic, so matrices built from different calls
// with the same base space and order are directly comparable. For order 1 the
// receiver itself is returned.
//
// Returns:
//   - *Space: Composite space of size Size()^order.
//   - error: errs.ErrInvalidOrder if order < 1.
func (s *Space) Expand(order int) (*Space, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", errs.ErrInvalidOrder, order)
	}
	if order == 1 {
		return s, nil
	}

	k := len(s.symbols)
	total := 1
	for i := 0; i < order; i++ {
		total *= k
	}

	// Odometer over tuple slots, most significant slot first.
	digits := make([]int, order)
	tuple := make([]Symbol, order)
	composite := make([]Symbol, 0, total)
	for {
		for i, d := range digits {
			tuple[i] = s.symbols[d]
		}
		composite = append(composite, CompositeKey(tuple...))

		pos := order - 1
		for pos >= 0 {
			digits[pos]++
			if digits[pos] < k {
				break
			}
			digits[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return New(composite...)
}

// Embed transforms a length-n event sequence into the length-(n-order+1)
// sequence of composite-state keys obtained by sliding an order-sized window
// across it. For order 1 it returns a validated copy of seq.
//
// Returns:
//   - []Symbol: The embedded sequence of composite keys.
//   - error: errs.ErrInvalidOrder, errs.ErrEmptySequence,
//     errs.ErrUnknownSymbol, or errs.ErrInsufficientData when
//     len(seq) < order.
func (s *Space) Embed(seq []Symbol, order int) ([]Symbol, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", errs.ErrInvalidOrder, order)
	}
	if err := s.Validate(seq); err != nil {
		return nil, err
	}
	if len(seq) < order {
		return nil, fmt.Errorf("%w: sequence length %d below embedding order %d",
			errs.ErrInsufficientData, len(seq), order)
	}

	out := make([]Symbol, len(seq)-order+1)
	for i := range out {
		out[i] = CompositeKey(seq[i : i+order]...)
	}

	return out, nil
}
