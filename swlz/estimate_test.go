package swlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqent/errs"
	"github.com/arloliu/seqent/statespace"
)

func collectRecords(t *testing.T, seq []statespace.Symbol, space *statespace.Space, opts ...Option) []MatchRecord {
	t.Helper()

	records, err := Records(seq, space, opts...)
	require.NoError(t, err)

	var out []MatchRecord
	for rec := range records {
		out = append(out, rec)
	}

	return out
}

func abcSpace(t *testing.T) *statespace.Space {
	t.Helper()

	space, err := statespace.New("a", "b", "c")
	require.NoError(t, err)

	return space
}

func TestRecords_HandComputed(t *testing.T) {
	space := abcSpace(t)
	seq := []statespace.Symbol{"a", "b", "a", "b", "c", "a", "b"}

	// Position 3 repeats "ab" from the start; position 4 extends only "b";
	// position 5 introduces "c"; positions 6 and 7 match but their runs hit
	// the end of the sequence, so they fall in the final incomplete window.
	want := []MatchRecord{
		{Position: 2, Length: 0, Valid: false},
		{Position: 3, Length: 2, Valid: true},
		{Position: 4, Length: 1, Valid: true},
		{Position: 5, Length: 0, Valid: false},
		{Position: 6, Length: 2, Valid: false},
		{Position: 7, Length: 1, Valid: false},
	}

	require.Equal(t, want, collectRecords(t, seq, space))
}

func TestRecords_TruncatedMatchesIncluded(t *testing.T) {
	space := abcSpace(t)
	seq := []statespace.Symbol{"a", "b", "a", "b", "c", "a", "b"}

	records := collectRecords(t, seq, space, WithTruncatedMatches(true))
	require.Equal(t, MatchRecord{Position: 6, Length: 2, Valid: true}, records[4])
	require.Equal(t, MatchRecord{Position: 7, Length: 1, Valid: true}, records[5])
}

func TestRecords_MinHistoryWarmUp(t *testing.T) {
	space := abcSpace(t)
	seq := []statespace.Symbol{"a", "b", "a", "b", "c", "a", "b"}

	records := collectRecords(t, seq, space, WithMinHistory(3))
	require.Equal(t, 4, records[0].Position)
}

func TestRecords_UnknownSymbol(t *testing.T) {
	space := abcSpace(t)

	_, err := Records([]statespace.Symbol{"a", "z"}, space)
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)
}

func TestEstimateRate_HandComputed(t *testing.T) {
	space := abcSpace(t)
	seq := []statespace.Symbol{"a", "b", "a", "b", "c", "a", "b"}

	est, err := EstimateRate(seq, space)
	require.NoError(t, err)

	// Valid records: position 3 (length 2) and position 4 (length 1).
	require.Equal(t, 2, est.Included)
	require.Equal(t, 4, est.MaxPosition)
	require.InDelta(t, 1.5, est.MeanMatchLength, 1e-12)
	// log2(4) / 1.5
	require.InDelta(t, 4.0/3.0, est.Rate, 1e-12)
}

func TestEstimateRate_Deterministic(t *testing.T) {
	space, err := statespace.New("1", "2", "3")
	require.NoError(t, err)

	seq := []statespace.Symbol{
		"1", "3", "1", "3", "1", "2", "1", "3", "2", "3",
		"2", "3", "3", "1", "3", "1", "3", "3", "3", "2",
	}

	first, err := EstimateRate(seq, space)
	require.NoError(t, err)

	for run := 0; run < 3; run++ {
		again, err := EstimateRate(seq, space)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}

	// The record stream itself must be reproducible as well.
	require.Equal(t,
		collectRecords(t, seq, space),
		collectRecords(t, seq, space),
	)

	// Both matcher strategies agree on the aggregate.
	hashed, err := EstimateRate(seq, space, WithMatcher(NewHashChainMatcher()))
	require.NoError(t, err)
	require.Equal(t, first, hashed)
}

func TestEstimateRate_LengthOneSequence(t *testing.T) {
	space := abcSpace(t)

	_, err := EstimateRate([]statespace.Symbol{"a"}, space)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestEstimateRate_NoMatchesAnywhere(t *testing.T) {
	space := abcSpace(t)

	_, err := EstimateRate([]statespace.Symbol{"a", "b", "c"}, space)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestEstimateRate_ParallelMatchesSequential(t *testing.T) {
	space, err := statespace.New("0", "1")
	require.NoError(t, err)

	seq := make([]statespace.Symbol, 0, 512)
	for i := 0; i < 512; i++ {
		// Deterministic but aperiodic bit pattern.
		if (i*i+i/3)%5 < 2 {
			seq = append(seq, "0")
		} else {
			seq = append(seq, "1")
		}
	}

	sequential, err := EstimateRate(seq, space)
	require.NoError(t, err)

	parallel, err := EstimateRate(seq, space, WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, sequential, parallel)
}

func TestWithMatcher_Nil(t *testing.T) {
	space := abcSpace(t)

	_, err := Records([]statespace.Symbol{"a", "b"}, space, WithMatcher(nil))
	require.ErrorIs(t, err, errs.ErrNoMatcher)
}

func TestWithMinHistory_Invalid(t *testing.T) {
	space := abcSpace(t)

	_, err := Records([]statespace.Symbol{"a", "b"}, space, WithMinHistory(0))
	require.Error(t, err)
}
