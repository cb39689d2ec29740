// core/kmp/kmp.go
// Package kmp implements prefix-function (Knuth-Morris-Pratt) matching.
//
// The next table follows the Charras/Lecroq formulation: next[i] is the
// pattern index to fall back to after a mismatch at index i, with -1 meaning
// "advance the text and restart". next[m] drives the fallback after a full
// match so overlapping occurrences are found.
package kmp

import "gapscan-core/alphabet"

// Compiled is the reusable result of preprocessing one pattern.
type Compiled struct {
	pattern []byte
	next    []int // length m+1; -1 = restart
}

// Compile builds the next table in a single O(m) pass of the pattern
// against itself.
func Compile(pattern []byte) (*Compiled, error) {
	if len(pattern) == 0 {
		return nil, alphabet.ErrEmptyPattern
	}
	m := len(pattern)
	next := make([]int, m+1)

	i, j := 0, -1
	next[0] = -1
	for i < m {
		for j > -1 && pattern[i] != pattern[j] {
			j = next[j]
		}
		i++
		j++
		if i < m && pattern[i] == pattern[j] {
			next[i] = next[j]
		} else {
			next[i] = j
		}
	}

	return &Compiled{
		pattern: append([]byte(nil), pattern...),
		next:    next,
	}, nil
}

// Count returns the number of occurrences of the pattern in text, including
// overlapping ones. Runs in O(n); text symbols outside the alphabet simply
// never compare equal.
func (c *Compiled) Count(text []byte) int {
	m, n := len(c.pattern), len(text)
	matches := 0

	i, j := 0, 0
	for j < n {
		for i > -1 && c.pattern[i] != text[j] {
			i = c.next[i]
		}
		i++
		j++
		if i >= m {
			matches++
			i = c.next[m]
		}
	}
	return matches
}

// Find returns the start offsets of all matches, in ascending order.
func (c *Compiled) Find(text []byte) []int {
	m, n := len(c.pattern), len(text)
	var out []int

	i, j := 0, 0
	for j < n {
		for i > -1 && c.pattern[i] != text[j] {
			i = c.next[i]
		}
		i++
		j++
		if i >= m {
			out = append(out, j-i)
			i = c.next[m]
		}
	}
	return out
}
