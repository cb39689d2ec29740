// core/shiftor/shiftor.go
// Package shiftor implements bitmask (Shift-Or) matching. Correctness rests
// purely on bit arithmetic; the search performs no character comparisons.
package shiftor

import (
	"errors"
	"fmt"

	"gapscan-core/alphabet"
)

const asize = 256

// WordSize bounds the supported pattern length.
const WordSize = 64

// ErrPatternTooLong is returned when the pattern does not fit the machine word.
var ErrPatternTooLong = errors.New("pattern exceeds word size")

// Compiled holds the per-symbol position masks and the acceptance threshold.
type Compiled struct {
	masks [asize]uint64 // 0 bit at each pattern position holding the symbol
	lim   uint64        // state < lim signals a match
}

// Compile builds the position masks. Patterns longer than WordSize symbols
// fail with ErrPatternTooLong rather than truncating.
func Compile(pattern []byte) (*Compiled, error) {
	m := len(pattern)
	if m == 0 {
		return nil, alphabet.ErrEmptyPattern
	}
	if m > WordSize {
		return nil, fmt.Errorf("pattern length %d: %w (max %d)", m, ErrPatternTooLong, WordSize)
	}

	c := &Compiled{}
	for i := range c.masks {
		c.masks[i] = ^uint64(0)
	}
	var lim uint64
	for i, j := 0, uint64(1); i < m; i, j = i+1, j<<1 {
		c.masks[pattern[i]] &^= j
		lim |= j
	}
	c.lim = ^(lim >> 1)
	return c, nil
}

// Count returns the number of matches in text, including overlapping ones.
// Out-of-alphabet text symbols carry an all-ones mask and so never extend a
// partial match.
func (c *Compiled) Count(text []byte) int {
	matches := 0
	state := ^uint64(0)
	for _, b := range text {
		state = state<<1 | c.masks[b]
		if state < c.lim {
			matches++
		}
	}
	return matches
}
