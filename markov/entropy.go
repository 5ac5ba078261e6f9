package markov

import (
	"fmt"
	"math"

	"github.com/arloliu/seqent/errs"
)

// Rate computes the Markov entropy rate
//
//	H = -sum_i sum_j pi_i * P_ij * log2(P_ij)
//
// in bits per symbol. Terms with P_ij = 0 contribute exactly 0 by
// construction; the ill-defined 0*log2(0) is never evaluated.
//
// H >= 0 for any stochastic p and probability vector pi, and H = 0 exactly
// when every visited state has a single outgoing transition of probability 1.
//
// Returns:
//   - float64: The entropy rate.
//   - error: errs.ErrMatrixShapeMismatch if p is not square with dimension
//     len(pi).
func Rate(p [][]float64, pi []float64) (float64, error) {
	n := len(pi)
	if len(p) != n {
		return 0, fmt.Errorf("%w: matrix has %d rows, distribution has %d entries",
			errs.ErrMatrixShapeMismatch, len(p), n)
	}

	var h float64
	for i, row := range p {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d",
				errs.ErrMatrixShapeMismatch, i, len(row), n)
		}
		if pi[i] == 0 {
			continue
		}
		for _, pij := range row {
			if pij == 0 {
				continue
			}
			h -= pi[i] * pij * math.Log2(pij)
		}
	}

	// log2 of probabilities slightly above 1 can leave a tiny negative residue.
	if h < 0 {
		h = 0
	}

	return h, nil
}
