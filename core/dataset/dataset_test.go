package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrings(t *testing.T) {
	in := "3 8\nACGTACGT\nCGAG\nTT\n"
	got, err := ParseStrings(strings.NewReader(in), "patterns")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("ACGTACGT"), []byte("CGAG"), []byte("TT")}, got)
}

func TestParseStringsCountMismatch(t *testing.T) {
	in := "3 8\nACGT\nCGAG\n"
	_, err := ParseStrings(strings.NewReader(in), "patterns")
	assert.ErrorContains(t, err, "header promised 3")
}

func TestParseStringsMissingHeader(t *testing.T) {
	_, err := ParseStrings(strings.NewReader(""), "patterns")
	assert.ErrorContains(t, err, "missing header")
}

func TestParseStringsBadHeader(t *testing.T) {
	_, err := ParseStrings(strings.NewReader("three 8\nACG\n"), "patterns")
	assert.Error(t, err)
}

func TestParseAnswers(t *testing.T) {
	in := "2 3 1\n4,0,2\n1,1,0\n"
	got, err := ParseAnswers(strings.NewReader(in), "answers")
	require.NoError(t, err)
	assert.Equal(t, 1, got.K)
	assert.Equal(t, [][]int{{4, 0, 2}, {1, 1, 0}}, got.Counts)
}

func TestParseAnswersNoGapField(t *testing.T) {
	in := "1 2\n5,7\n"
	got, err := ParseAnswers(strings.NewReader(in), "answers")
	require.NoError(t, err)
	assert.Equal(t, 0, got.K)
	assert.Equal(t, [][]int{{5, 7}}, got.Counts)
}

func TestParseAnswersColumnMismatch(t *testing.T) {
	in := "1 3\n5,7\n"
	_, err := ParseAnswers(strings.NewReader(in), "answers")
	assert.ErrorContains(t, err, "want 3")
}

func TestParseAnswersRowMismatch(t *testing.T) {
	in := "2 2\n5,7\n"
	_, err := ParseAnswers(strings.NewReader(in), "answers")
	assert.ErrorContains(t, err, "header promised 2")
}
