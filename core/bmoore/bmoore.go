// core/bmoore/bmoore.go
// Package bmoore implements suffix-shift (Boyer-Moore) matching with both
// the last-occurrence ("bad character") and good-suffix heuristics.
package bmoore

import "gapscan-core/alphabet"

const asize = 256

// Compiled holds the two shift tables for one pattern.
type Compiled struct {
	pattern    []byte
	lastOcc    [asize]int // per byte: shift implied by its rightmost occurrence
	goodSuffix []int      // length m
}

// Compile preprocesses the pattern into its shift tables.
func Compile(pattern []byte) (*Compiled, error) {
	if len(pattern) == 0 {
		return nil, alphabet.ErrEmptyPattern
	}
	c := &Compiled{pattern: append([]byte(nil), pattern...)}
	c.calcLastOcc()
	c.calcGoodSuffix()
	return c, nil
}

func (c *Compiled) calcLastOcc() {
	m := len(c.pattern)
	for i := range c.lastOcc {
		c.lastOcc[i] = m // absent symbols imply a full shift
	}
	for i := 0; i < m-1; i++ {
		c.lastOcc[c.pattern[i]] = m - i - 1
	}
}

// suffixes[i] is the length of the longest suffix of the pattern that also
// ends at index i. Computed right-to-left with two pointers (f, g) tracking
// the widest known matching suffix window.
func (c *Compiled) suffixes() []int {
	m := len(c.pattern)
	suff := make([]int, m)
	suff[m-1] = m

	f := 0
	g := m - 1
	for i := m - 2; i >= 0; i-- {
		if i > g && suff[i+m-1-f] < i-g {
			suff[i] = suff[i+m-1-f]
		} else {
			if i < g {
				g = i
			}
			f = i
			for g >= 0 && c.pattern[g] == c.pattern[g+m-1-f] {
				g--
			}
			suff[i] = f - g
		}
	}
	return suff
}

func (c *Compiled) calcGoodSuffix() {
	m := len(c.pattern)
	suff := c.suffixes()

	c.goodSuffix = make([]int, m)
	for i := range c.goodSuffix {
		c.goodSuffix[i] = m
	}
	j := 0
	for i := m - 1; i >= -1; i-- {
		if i == -1 || suff[i] == i+1 {
			for ; j < m-1-i; j++ {
				if c.goodSuffix[j] == m {
					c.goodSuffix[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i <= m-2; i++ {
		c.goodSuffix[m-1-suff[i]] = m - 1 - i
	}
}

// Count scans text right-to-left per alignment, shifting by the larger of
// the two heuristics. Shift amounts never skip past a match, so overlapping
// occurrences are all found.
func (c *Compiled) Count(text []byte) int {
	m, n := len(c.pattern), len(text)
	matches := 0

	j := 0
	for j <= n-m {
		i := m - 1
		for i >= 0 && c.pattern[i] == text[i+j] {
			i--
		}
		if i < 0 {
			matches++
			j += c.goodSuffix[0]
		} else {
			j += max(c.goodSuffix[i], c.lastOcc[text[i+j]]-m+1+i)
		}
	}
	return matches
}
