package markov

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/seqent/statespace"
)

// StationaryStatus tags the outcome of the eigen-based stationary estimator.
type StationaryStatus int

const (
	// StationaryFound indicates a unique unit eigenvalue was selected and Pi
	// holds the corresponding normalized eigenvector.
	StationaryFound StationaryStatus = iota

	// StationaryDegenerate indicates no eigenvalue of magnitude 1 was found
	// after rounding; Pi is the zero vector.
	StationaryDegenerate

	// StationaryAmbiguous indicates multiple eigenvalues tied for closest to
	// 1; Pi is the zero vector and Candidates holds every tied eigenvector.
	StationaryAmbiguous
)

// String returns the status name.
func (s StationaryStatus) String() string {
	switch s {
	case StationaryFound:
		return "found"
	case StationaryDegenerate:
		return "degenerate"
	case StationaryAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// StationaryResult is the tagged outcome of a stationary-distribution
// estimate. Pi always has the dimension of the state enumeration; it is the
// zero vector unless Status is StationaryFound, so downstream entropy-rate
// computation stays defined and callers detect degeneracy by inspecting the
// tag (or the vector) rather than handling a failure.
type StationaryResult struct {
	Status     StationaryStatus
	Pi         []float64
	Candidates [][]float64
}

// eigenDecimals guards the unit-eigenvalue test against floating noise:
// eigenvalue magnitudes and distances to 1 are compared after rounding to
// this many decimal places.
const eigenDecimals = 10

func roundTo(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}

// EmpiricalDistribution estimates the stationary distribution as the relative
// frequency of each state of space across seq.
//
// The result always sums to 1 (up to floating-point tolerance) for any
// nonempty valid sequence.
//
// Returns:
//   - []float64: Frequency vector in enumeration order.
//   - error: errs.ErrEmptySequence or errs.ErrUnknownSymbol.
func EmpiricalDistribution(seq []statespace.Symbol, space *statespace.Space) ([]float64, error) {
	idx, err := space.Indices(seq)
	if err != nil {
		return nil, err
	}

	pi := make([]float64, space.Size())
	for _, i := range idx {
		pi[i]++
	}
	floats.Scale(1/float64(len(idx)), pi)

	return pi, nil
}

// EigenDistribution estimates the stationary distribution from the
// eigen-decomposition of the transpose of the row-stochastic matrix p.
//
// A well-formed stochastic matrix has an eigenvalue equal to 1 (the
// Perron-Frobenius eigenvalue); the estimator selects the eigenvalue closest
// to 1 by absolute difference, with magnitudes rounded to guard against
// floating noise, and normalizes the real part of its eigenvector to sum
// to 1.
//
// The outcome is tagged rather than raised:
//   - StationaryFound with the normalized vector when a unique eigenvalue wins.
//   - StationaryDegenerate with a zero vector when no eigenvalue rounds to
//     magnitude 1, as happens for sub-stochastic matrices with zero rows.
//   - StationaryAmbiguous with a zero vector and all tied candidate vectors
//     when several eigenvalues are equally close to 1, as happens for
//     spectra of periodic or reducible chains.
func EigenDistribution(p [][]float64) StationaryResult {
	n := len(p)
	zero := make([]float64, n)
	if n == 0 {
		return StationaryResult{Status: StationaryDegenerate, Pi: zero}
	}

	// Transpose: left eigenvectors of p are right eigenvectors of p^T.
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(j, i, p[i][j])
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return StationaryResult{Status: StationaryDegenerate, Pi: zero}
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	best := math.Inf(1)
	var winners []int
	for k, lambda := range values {
		if roundTo(cmplx.Abs(lambda), eigenDecimals) != 1 {
			continue
		}
		dist := roundTo(cmplx.Abs(lambda-1), eigenDecimals)
		switch {
		case dist < best:
			best = dist
			winners = winners[:0]
			winners = append(winners, k)
		case dist == best:
			winners = append(winners, k)
		}
	}

	if len(winners) == 0 {
		return StationaryResult{Status: StationaryDegenerate, Pi: zero}
	}

	if len(winners) > 1 {
		candidates := make([][]float64, 0, len(winners))
		for _, k := range winners {
			if v, ok := normalizedColumn(&vectors, n, k); ok {
				candidates = append(candidates, v)
			}
		}

		return StationaryResult{Status: StationaryAmbiguous, Pi: zero, Candidates: candidates}
	}

	v, ok := normalizedColumn(&vectors, n, winners[0])
	if !ok {
		return StationaryResult{Status: StationaryDegenerate, Pi: zero}
	}

	return StationaryResult{Status: StationaryFound, Pi: v}
}

// normalizedColumn extracts the real part of eigenvector column k and
// normalizes it to sum to 1. Reports false when the column sums to zero and
// cannot be normalized.
func normalizedColumn(vectors *mat.CDense, n, k int) ([]float64, bool) {
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = real(vectors.At(i, k))
	}
	sum := floats.Sum(v)
	if sum == 0 {
		return nil, false
	}
	floats.Scale(1/sum, v)

	return v, true
}
