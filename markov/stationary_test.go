package markov

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqent/statespace"
)

func TestEmpiricalDistribution_SumsToOne(t *testing.T) {
	space, err := statespace.New("a", "b", "c")
	require.NoError(t, err)

	seq := []statespace.Symbol{"a", "a", "b", "c", "a", "b"}
	pi, err := EmpiricalDistribution(seq, space)
	require.NoError(t, err)

	require.InDelta(t, 1.0, pi[0]+pi[1]+pi[2], 1e-9)
	require.InDelta(t, 0.5, pi[0], 1e-12)
	require.InDelta(t, 1.0/3.0, pi[1], 1e-12)
	require.InDelta(t, 1.0/6.0, pi[2], 1e-12)
}

// checkUniformStationary verifies the eigen estimator on a uniform chain
// whose transition probability is 1/n for n states.
func checkUniformStationary(t *testing.T, n int) {
	t.Helper()

	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
		for j := range p[i] {
			p[i][j] = 1.0 / float64(n)
		}
	}

	res := EigenDistribution(p)
	require.Equal(t, StationaryFound, res.Status)
	for i := 0; i < n; i++ {
		require.GreaterOrEqual(t, res.Pi[i], 0.0)
		require.LessOrEqual(t, res.Pi[i], 1.0)
		require.InDelta(t, 1.0/float64(n), res.Pi[i], 1e-3)
	}
}

func TestEigenDistribution_UniformChains(t *testing.T) {
	for n := 2; n < 10; n++ {
		checkUniformStationary(t, n)
	}
}

func TestEigenDistribution_TwoStateClosedForm(t *testing.T) {
	// p01 = P(0 -> 1), p10 = P(1 -> 0); pi = (p10, p01) / (p01 + p10).
	const p01, p10 = 0.01, 0.05
	p := [][]float64{
		{1 - p01, p01},
		{p10, 1 - p10},
	}

	res := EigenDistribution(p)
	require.Equal(t, StationaryFound, res.Status)
	require.InDelta(t, p10/(p01+p10), res.Pi[0], 1e-9)
	require.InDelta(t, p01/(p01+p10), res.Pi[1], 1e-9)
}

func TestEigenDistribution_MatchesEmpiricalOnSimulatedChain(t *testing.T) {
	const p01, p10 = 0.01, 0.05
	p := [][]float64{
		{1 - p01, p01},
		{p10, 1 - p10},
	}
	space, err := statespace.New("0", "1")
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 13))
	seq, err := Simulate(p, space, 200_000, nil, rng)
	require.NoError(t, err)

	empirical, err := EmpiricalDistribution(seq, space)
	require.NoError(t, err)

	res := EigenDistribution(p)
	require.Equal(t, StationaryFound, res.Status)
	require.InDelta(t, res.Pi[0], empirical[0], 0.05)
	require.InDelta(t, res.Pi[1], empirical[1], 0.05)
}

func TestEigenDistribution_PeriodicChainSelectsUnitEigenvalue(t *testing.T) {
	// The deterministic 2-cycle has spectrum {1, -1}; both have magnitude 1
	// but only 1 is closest to 1, so the estimate is unambiguous.
	p := [][]float64{
		{0, 1},
		{1, 0},
	}

	res := EigenDistribution(p)
	require.Equal(t, StationaryFound, res.Status)
	require.InDelta(t, 0.5, res.Pi[0], 1e-9)
	require.InDelta(t, 0.5, res.Pi[1], 1e-9)
}

func TestEigenDistribution_Degenerate(t *testing.T) {
	// All-zero rows give a nilpotent matrix: no unit eigenvalue anywhere.
	p := [][]float64{
		{0, 0},
		{0, 0},
	}

	res := EigenDistribution(p)
	require.Equal(t, StationaryDegenerate, res.Status)
	require.Equal(t, []float64{0, 0}, res.Pi)
}

func TestEigenDistribution_AmbiguousOnReducibleChain(t *testing.T) {
	// Two absorbing states: eigenvalue 1 with multiplicity 2. The estimator
	// must report the tie instead of picking a candidate.
	p := [][]float64{
		{1, 0},
		{0, 1},
	}

	res := EigenDistribution(p)
	require.Equal(t, StationaryAmbiguous, res.Status)
	require.Equal(t, []float64{0, 0}, res.Pi)
	require.Len(t, res.Candidates, 2)
	for _, c := range res.Candidates {
		require.InDelta(t, 1.0, c[0]+c[1], 1e-9)
	}
}

func TestEigenDistribution_SumsToOne(t *testing.T) {
	p := [][]float64{
		{0.2, 0.5, 0.3},
		{0.4, 0.4, 0.2},
		{0.1, 0.3, 0.6},
	}

	res := EigenDistribution(p)
	require.Equal(t, StationaryFound, res.Status)
	sum := 0.0
	for _, v := range res.Pi {
		require.False(t, math.IsNaN(v))
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}
