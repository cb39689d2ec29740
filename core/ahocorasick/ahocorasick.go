// core/ahocorasick/ahocorasick.go
// Package ahocorasick implements multi-pattern matching over the dense DNA
// alphabet: a trie-shaped goto table, BFS-built failure links, and output
// sets closed under failure-link reachability. One automaton walks the text
// once regardless of pattern count.
package ahocorasick

import (
	"fmt"

	"gapscan-core/alphabet"
)

// node is one state in the automaton. After Build completes, next holds the
// full goto function (missing trie edges resolved through failure links), so
// the search never consults fail directly.
type node struct {
	next [alphabet.Size]int32
	fail int32
	out  []int32 // pattern indices matched when this state is reached
}

// Automaton is the compiled pattern set.
type Automaton struct {
	nodes    []node
	patterns int
}

// Build constructs the automaton for all patterns. Patterns must be
// non-empty and within the DNA alphabet.
func Build(patterns [][]byte) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("ahocorasick: %w", alphabet.ErrEmptyPattern)
	}

	nodes := make([]node, 1) // state 0 = root
	for i := range nodes[0].next {
		nodes[0].next[i] = -1
	}

	// 1) Trie edges: reuse shared prefixes, create states for the rest.
	for pi, pat := range patterns {
		if err := alphabet.ValidatePattern(pat); err != nil {
			return nil, fmt.Errorf("ahocorasick: pattern %d: %w", pi, err)
		}
		state := int32(0)
		for _, b := range pat {
			ix := alphabet.Index(b)
			if nodes[state].next[ix] == -1 {
				nodes[state].next[ix] = int32(len(nodes))
				var nn node
				for k := range nn.next {
					nn.next[k] = -1
				}
				nodes = append(nodes, nn)
			}
			state = nodes[state].next[ix]
		}
		nodes[state].out = append(nodes[state].out, int32(pi))
	}

	// 2) BFS for failure links; undefined transitions are resolved in place
	// so the goto function is total. The root never fails.
	queue := make([]int32, 0, len(nodes))
	for ch := 0; ch < alphabet.Size; ch++ {
		if nx := nodes[0].next[ch]; nx != -1 {
			nodes[nx].fail = 0
			queue = append(queue, nx)
		} else {
			nodes[0].next[ch] = 0
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for ch := 0; ch < alphabet.Size; ch++ {
			s := nodes[r].next[ch]
			if s != -1 {
				queue = append(queue, s)
				f := nodes[r].fail
				nodes[s].fail = nodes[f].next[ch]
				// Close the output set: a shorter pattern that is a suffix
				// of a longer one must still be reported.
				nodes[s].out = append(nodes[s].out, nodes[nodes[s].fail].out...)
			} else {
				nodes[r].next[ch] = nodes[nodes[r].fail].next[ch]
			}
		}
	}

	return &Automaton{nodes: nodes, patterns: len(patterns)}, nil
}

// NumStates returns the number of automaton states, root included.
func (a *Automaton) NumStates() int { return len(a.nodes) }

// Count walks text once and returns one match count per pattern, in input
// order. An out-of-alphabet symbol resets the walk to the root; nothing can
// match across it.
func (a *Automaton) Count(text []byte) []int {
	counts := make([]int, a.patterns)
	state := int32(0)
	for i := 0; i < len(text); i++ {
		ix := alphabet.Index(text[i])
		if ix < 0 {
			state = 0
			continue
		}
		state = a.nodes[state].next[ix]
		for _, pi := range a.nodes[state].out {
			counts[pi]++
		}
	}
	return counts
}
