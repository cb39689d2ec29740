package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gapscan-core/dataset"
)

func bs(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestRunExactEngine(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Algorithm: "kmp",
		Sequences: bs("ACGTACGT", "TTTT", ""),
		Patterns:  bs("ACGT", "TT"),
	})
	require.NoError(t, err)
	assert.Equal(t, "kmp", rep.Algorithm)
	assert.Equal(t, "go", rep.Language)
	assert.Equal(t, 2, rep.Patterns)
	assert.Equal(t, 3, rep.Sequences)
	// ACGT: 2+0+0; TT: 0+3+0
	assert.Equal(t, 5, rep.TotalMatches)
	assert.Empty(t, rep.Mismatches)
}

func TestRunValidatesAnswers(t *testing.T) {
	answers := &dataset.Answers{Counts: [][]int{{2, 0}, {0, 9}}}
	rep, err := Run(context.Background(), Options{
		Algorithm: "bm",
		Sequences: bs("ACGTACGT", "TTTT"),
		Patterns:  bs("ACGT", "TT"),
		Answers:   answers,
	})
	require.NoError(t, err)
	require.Len(t, rep.Mismatches, 1)
	m := rep.Mismatches[0]
	assert.Equal(t, 1, m.Pattern)
	assert.Equal(t, 1, m.Sequence)
	assert.Equal(t, 3, m.Got)
	assert.Equal(t, 9, m.Want)
}

func TestRunMultiPattern(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Algorithm: MultiPattern,
		Sequences: bs("ACGTACGT", "AAA"),
		Patterns:  bs("A", "AA", "ACG"),
	})
	require.NoError(t, err)
	// A: 2+3; AA: 0+2; ACG: 2+0
	assert.Equal(t, 9, rep.TotalMatches)
}

func TestRunGapEngine(t *testing.T) {
	for _, alg := range []string{"dfagap", "regexp"} {
		rep, err := Run(context.Background(), Options{
			Algorithm: alg,
			Sequences: bs("ACGAAGC"),
			Patterns:  bs("CGAG"),
			K:         1,
		})
		require.NoError(t, err, alg)
		assert.Equal(t, 1, rep.TotalMatches, alg)
		assert.Equal(t, 1, rep.MaxGap, alg)
	}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Algorithm: "nope",
		Sequences: bs("ACGT"),
		Patterns:  bs("A"),
	})
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestRunNoPatterns(t *testing.T) {
	_, err := Run(context.Background(), Options{Algorithm: "kmp"})
	assert.Error(t, err)
}

func TestRunCompileErrorPropagates(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Algorithm: "shiftor",
		Sequences: bs("ACGT"),
		Patterns:  bs("A", string(bsRepeat('A', 65))),
	})
	assert.Error(t, err)
}

func bsRepeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestRunThreadedMatchesSerial(t *testing.T) {
	seqs := bs("ACGTACGTACGTACGT", "GGGGGG", "ACACACAC", "", "TGCATGCA")
	pats := bs("AC", "G", "TGCA")

	serial, err := Run(context.Background(), Options{
		Algorithm: "kmp", Sequences: seqs, Patterns: pats, Threads: 1,
	})
	require.NoError(t, err)
	threaded, err := Run(context.Background(), Options{
		Algorithm: "kmp", Sequences: seqs, Patterns: pats, Threads: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, serial.TotalMatches, threaded.TotalMatches)
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{
		Algorithm: "kmp",
		Sequences: bs("ACGT", "ACGT"),
		Patterns:  bs("A"),
	})
	assert.ErrorIs(t, err, context.Canceled)
}
