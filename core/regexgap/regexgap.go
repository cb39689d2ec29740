// core/regexgap/regexgap.go
// Package regexgap implements bounded-gap matching by synthesizing an
// equivalent regular expression and delegating evaluation to the
// backtracking regexp2 engine.
//
// The expression wraps the whole match in a zero-width lookahead so that a
// match does not consume text: the evaluator's default consume-on-match
// behavior would otherwise suppress overlapping occurrences. Each gap is a
// negated single-symbol class bounded to k repetitions; a bare wildcard
// would accept the awaited pattern symbol inside the gap and over-count.
package regexgap

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"gapscan-core/alphabet"
)

// Synthesize returns the lookahead expression for pattern and gap bound k:
// (?=(p0[^p1]{0,k}p1...[^pm-1]{0,k}pm-1)).
func Synthesize(pattern []byte, k int) string {
	var sb strings.Builder
	sb.WriteString("(?=(")
	sb.WriteByte(pattern[0])
	for i := 1; i < len(pattern); i++ {
		fmt.Fprintf(&sb, "[^%c]{0,%d}%c", pattern[i], k, pattern[i])
	}
	sb.WriteString("))")
	return sb.String()
}

// Compiled wraps the evaluator's compiled expression.
type Compiled struct {
	re *regexp2.Regexp
}

// Compile validates the inputs, synthesizes the expression and hands it to
// the evaluator. Evaluator compilation errors propagate unchanged.
func Compile(pattern []byte, k int) (*Compiled, error) {
	if err := alphabet.ValidatePattern(pattern); err != nil {
		return nil, fmt.Errorf("regexgap: %w", err)
	}
	if k < 0 {
		return nil, fmt.Errorf("regexgap: gap bound %d must be non-negative", k)
	}
	re, err := regexp2.Compile(Synthesize(pattern, k), regexp2.None)
	if err != nil {
		return nil, err
	}
	return &Compiled{re: re}, nil
}

// Count returns the number of zero-width match events scanning left to
// right. The evaluator advances one position past each empty match, so every
// candidate start offset is examined and overlapping matches all count.
func (c *Compiled) Count(text []byte) int {
	matches := 0
	m, err := c.re.FindStringMatch(string(text))
	for err == nil && m != nil {
		matches++
		m, err = c.re.FindNextMatch(m)
	}
	return matches
}
