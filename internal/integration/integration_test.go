// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gapscan/internal/app"
	"gapscan/internal/writers"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

// run drives the CLI with every shared flag spelled out so state from a
// previous invocation cannot leak through the flag set.
func run(t *testing.T, engine, seqs, pats, answers, format string, extra ...string) (int, string, string) {
	t.Helper()
	args := []string{
		engine,
		"--sequences", seqs,
		"--patterns", pats,
		"--answers=" + answers,
		"--output", format,
		"--fasta=false",
		"--threads", "1",
		"--quiet",
	}
	args = append(args, extra...)
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

const (
	seqData = "2 12\nACGTACGTACGT\nTTTTTT\n"
	patData = "2 4\nACGT\nTT\n"
)

func TestEndToEndText(t *testing.T) {
	seqs := write(t, "seqs.txt", seqData)
	pats := write(t, "pats.txt", patData)

	code, out, errOut := run(t, "kmp", seqs, pats, "", "text")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "algorithm: kmp")
	assert.Contains(t, out, "language: go")
	// ACGT: 3+0; TT: 0+5
	assert.Contains(t, out, "total_matches: 8")
	assert.NotContains(t, out, "mismatch:")
}

func TestEndToEndJSON(t *testing.T) {
	seqs := write(t, "seqs.txt", seqData)
	pats := write(t, "pats.txt", patData)

	code, out, errOut := run(t, "bm", seqs, pats, "", "json")
	require.Equal(t, 0, code, errOut)

	var rep writers.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "bm", rep.Algorithm)
	assert.Equal(t, 8, rep.TotalMatches)
	assert.Empty(t, rep.Mismatches)
}

func TestAnswersMatchAllEngines(t *testing.T) {
	seqs := write(t, "seqs.txt", seqData)
	pats := write(t, "pats.txt", patData)
	answers := write(t, "answers.txt", "2 2\n3,0\n0,5\n")

	for _, engine := range []string{"kmp", "bm", "shiftor", "ac"} {
		code, out, errOut := run(t, engine, seqs, pats, answers, "text")
		assert.Equal(t, 0, code, "%s: %s", engine, errOut)
		assert.NotContains(t, out, "mismatch:", engine)
	}
}

func TestAnswersMismatchExit1(t *testing.T) {
	seqs := write(t, "seqs.txt", seqData)
	pats := write(t, "pats.txt", patData)
	answers := write(t, "answers.txt", "2 2\n3,0\n0,4\n")

	code, out, _ := run(t, "kmp", seqs, pats, answers, "text")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "mismatch: pattern 2 vs sequence 2 (5 != 4)")
}

func TestGapBoundFromAnswersHeader(t *testing.T) {
	seqs := write(t, "seqs.txt", "1 7\nACGAAGC\n")
	pats := write(t, "pats.txt", "1 4\nCGAG\n")
	answers := write(t, "answers.txt", "1 1 1\n1\n")

	code, out, errOut := run(t, "regexp", seqs, pats, answers, "text")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "max_gap: 1")
	assert.Contains(t, out, "total_matches: 1")
}

func TestGapEnginesAgree(t *testing.T) {
	seqs := write(t, "seqs.txt", "2 16\nACGTACGTACGTACGT\nGGCCGGCC\n")
	pats := write(t, "pats.txt", "2 3\nAGT\nGC\n")

	totals := map[string]int{}
	for _, engine := range []string{"dfagap", "regexp"} {
		code, out, errOut := run(t, engine, seqs, pats, "", "json", "--max-gap", "2")
		require.Equal(t, 0, code, errOut)
		var rep writers.Report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 2, rep.MaxGap, engine)
		totals[engine] = rep.TotalMatches
	}
	assert.Equal(t, totals["dfagap"], totals["regexp"])
	assert.NotZero(t, totals["dfagap"])
}

func TestFastaSequences(t *testing.T) {
	fa := write(t, "seqs.fa", ">s1\nACGTACGTACGT\n>s2\nTTTTTT\n")
	pats := write(t, "pats.txt", patData)

	code, out, errOut := run(t, "kmp", fa, pats, "", "text", "--fasta=true")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "total_matches: 8")
}

func TestMissingInputExit2(t *testing.T) {
	pats := write(t, "pats.txt", patData)
	code, _, errOut := run(t, "kmp", filepath.Join(t.TempDir(), "absent.txt"), pats, "", "text")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestUnknownEngineExit2(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"nosuch"}, &out, &errBuf)
	assert.Equal(t, 2, code)
}
