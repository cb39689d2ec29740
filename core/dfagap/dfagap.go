// core/dfagap/dfagap.go
// Package dfagap implements bounded-gap matching with a purpose-built
// deterministic automaton.
//
// The automaton has a trunk of states reached by consuming the pattern
// symbols in order, and, per trunk step, a chain of up to k branch states
// that absorb non-matching "gap" symbols before the next required pattern
// symbol. Branch transitions accept only symbols other than the awaited
// pattern symbol; the awaited symbol always returns to the trunk. The state
// count is exactly 1 + m + k*(m-1).
package dfagap

import (
	"errors"
	"fmt"

	"gapscan-core/alphabet"
)

// fail marks an undefined transition; reaching it halts a walk.
const fail = -1

// ErrNegativeGap is returned for k < 0.
var ErrNegativeGap = errors.New("gap bound must be non-negative")

// Automaton is the compiled pattern for one (pattern, k) pair.
type Automaton struct {
	delta    [][alphabet.Size]int32
	terminal int32
	m        int
}

// Match is one gapped occurrence: Length is the number of text symbols the
// walk consumed, which varies per match because of gaps.
type Match struct {
	Start  int
	Length int
}

// builder threads the next unassigned state id through construction instead
// of keeping it in package state.
type builder struct {
	delta [][alphabet.Size]int32
	next  int32
}

func newBuilder(states int) *builder {
	delta := make([][alphabet.Size]int32, states)
	for s := range delta {
		for c := range delta[s] {
			delta[s][c] = fail
		}
	}
	return &builder{delta: delta}
}

func (b *builder) alloc() int32 {
	id := b.next
	b.next++
	return id
}

func (b *builder) set(from int32, sym int, to int32) {
	if b.delta[from][sym] != fail {
		panic(fmt.Sprintf("dfagap: transition (%d,%d) assigned twice", from, sym))
	}
	b.delta[from][sym] = to
}

// Compile builds the automaton for pattern and maximum gap k. The pattern
// must be non-empty DNA; k must be >= 0.
func Compile(pattern []byte, k int) (*Automaton, error) {
	if err := alphabet.ValidatePattern(pattern); err != nil {
		return nil, fmt.Errorf("dfagap: %w", err)
	}
	if k < 0 {
		return nil, fmt.Errorf("dfagap: k=%d: %w", k, ErrNegativeGap)
	}

	m := len(pattern)
	b := newBuilder(1 + m + k*(m-1))

	start := b.alloc()
	trunk := b.alloc()
	b.set(start, alphabet.Index(pattern[0]), trunk)

	for i := 1; i < m; i++ {
		ci := alphabet.Index(pattern[i])
		next := b.alloc()
		b.set(trunk, ci, next)

		// Chain of k branch states off the previous trunk head. Each absorbs
		// one non-ci gap symbol and rejoins the trunk on ci.
		last := trunk
		for j := 0; j < k; j++ {
			branch := b.alloc()
			b.set(branch, ci, next)
			for s := 0; s < alphabet.Size; s++ {
				if s != ci {
					b.set(last, s, branch)
				}
			}
			last = branch
		}
		trunk = next
	}

	return &Automaton{delta: b.delta, terminal: trunk, m: m}, nil
}

// NumStates returns the state count, 1 + m + k*(m-1) by construction.
func (a *Automaton) NumStates() int { return len(a.delta) }

// PatternLen returns m.
func (a *Automaton) PatternLen() int { return a.m }

// walk consumes text symbols from offset i until the transition is
// undefined or the text ends, returning the halt state and symbols consumed.
func (a *Automaton) walk(text []byte, i int) (int32, int) {
	state := int32(0)
	ch := 0
	n := len(text)
	for i+ch < n {
		ix := alphabet.Index(text[i+ch])
		if ix < 0 {
			break // out-of-alphabet symbols never extend a match
		}
		nxt := a.delta[state][ix]
		if nxt == fail {
			break
		}
		state = nxt
		ch++
	}
	return state, ch
}

// Count tries every candidate start offset 0..n-m inclusive and counts the
// walks that halt in the terminal state. Offsets are tried independently, so
// overlapping matches are all found. O((m+k)*n) overall.
func (a *Automaton) Count(text []byte) int {
	matches := 0
	end := len(text) - a.m
	for i := 0; i <= end; i++ {
		if state, _ := a.walk(text, i); state == a.terminal {
			matches++
		}
	}
	return matches
}

// Find returns every gapped occurrence with its start offset and consumed
// length.
func (a *Automaton) Find(text []byte) []Match {
	var out []Match
	end := len(text) - a.m
	for i := 0; i <= end; i++ {
		if state, ch := a.walk(text, i); state == a.terminal {
			out = append(out, Match{Start: i, Length: ch})
		}
	}
	return out
}
