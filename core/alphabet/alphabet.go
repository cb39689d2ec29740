// core/alphabet/alphabet.go
// Package alphabet defines the DNA symbol set shared by all matching engines.
package alphabet

import (
	"errors"
	"fmt"
)

// Size is the cardinality of the DNA alphabet.
const Size = 4

// Symbols lists the alphabet in index order.
var Symbols = [Size]byte{'A', 'C', 'G', 'T'}

var index [256]int8

func init() {
	for i := range index {
		index[i] = -1
	}
	for i, b := range Symbols {
		index[b] = int8(i)
	}
}

// ErrEmptyPattern is returned by every engine's Compile for a zero-length pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// Index maps a byte to its dense 0..3 alphabet index, or -1 for
// out-of-alphabet symbols.
func Index(b byte) int { return int(index[b]) }

// Valid reports whether b is one of the four bases.
func Valid(b byte) bool { return index[b] >= 0 }

// ValidatePattern rejects empty patterns and patterns containing symbols
// outside the alphabet. Engines that need the alphabet complement (the gap
// engines) call this at compile time.
func ValidatePattern(pat []byte) error {
	if len(pat) == 0 {
		return ErrEmptyPattern
	}
	for i, b := range pat {
		if !Valid(b) {
			return fmt.Errorf("pattern symbol %q at index %d outside alphabet %q", b, i, Symbols)
		}
	}
	return nil
}
