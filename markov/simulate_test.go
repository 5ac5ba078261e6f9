package markov

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/statespace"
)

func TestSampleIndex_DeterministicTransitions(t *testing.T) {
	p := [][]float64{
		{0, 1},
		{1, 0},
	}

	require.Equal(t, 1, sampleIndex(p[0], 0.5))
	require.Equal(t, 0, sampleIndex(p[1], 0.5))
}

func TestSampleIndex_FaultyRow(t *testing.T) {
	require.Equal(t, -1, sampleIndex([]float64{0, 0}, 0.5))
}

func TestSimulate_DeterministicCycle(t *testing.T) {
	space, err := statespace.New("a", "b")
	require.NoError(t, err)

	p := [][]float64{
		{0, 1},
		{1, 0},
	}

	rng := rand.New(rand.NewPCG(1, 1))
	seq, err := Simulate(p, space, 6, []float64{1, 0}, rng)
	require.NoError(t, err)
	require.Len(t, seq, 6)

	// After the initial draw the chain must alternate strictly.
	for i := 1; i < len(seq); i++ {
		require.NotEqual(t, seq[i-1], seq[i])
	}
}

func TestSimulate_FallbackOnDegenerateMatrix(t *testing.T) {
	space, err := statespace.New("a", "b")
	require.NoError(t, err)

	// No unit eigenvalue: the initial state must come from the fallback.
	p := [][]float64{
		{0, 1},
		{0, 0},
	}

	rng := rand.New(rand.NewPCG(2, 2))
	seq, err := Simulate(p, space, 2, []float64{1, 0}, rng)
	require.NoError(t, err)
	require.Equal(t, statespace.Symbol("a"), seq[0])
	require.Equal(t, statespace.Symbol("b"), seq[1])
}

func TestSimulate_AllZeroRowFails(t *testing.T) {
	space, err := statespace.New("a", "b")
	require.NoError(t, err)

	p := [][]float64{
		{0, 1},
		{0, 0},
	}

	rng := rand.New(rand.NewPCG(3, 3))
	_, err = Simulate(p, space, 10, []float64{1, 0}, rng)
	require.ErrorIs(t, err, errs.ErrNotStochastic)
}

func TestSimulate_RoundTripRecoversMatrixAndRate(t *testing.T) {
	space, err := statespace.New("0", "1")
	require.NoError(t, err)

	p := [][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	}

	rng := rand.New(rand.NewPCG(42, 99))
	seq, err := Simulate(p, space, 100_000, nil, rng)
	require.NoError(t, err)

	res, err := Estimate(seq, space, 1, StrategyEmpirical)
	require.NoError(t, err)

	for i := range p {
		for j := range p[i] {
			require.InDelta(t, p[i][j], res.Probabilities[i][j], 0.02,
				"transition %d -> %d", i, j)
		}
	}

	truePi := EigenDistribution(p)
	require.Equal(t, StationaryFound, truePi.Status)
	trueRate, err := Rate(p, truePi.Pi)
	require.NoError(t, err)
	require.False(t, math.IsNaN(trueRate))
	require.InDelta(t, trueRate, res.Rate, 0.02)
}
