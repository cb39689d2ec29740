// core/match/match.go
// Package match defines the engine contracts shared by the single-pattern,
// gap and multi-pattern matchers, plus a name registry used for CLI engine
// selection.
//
// Each engine returns its own compiled-pattern struct behind the Counter
// interface; compiled patterns are immutable and may be shared read-only
// across concurrent searches.
package match

import "sort"

// Counter is a compiled pattern ready to be searched against texts.
type Counter interface {
	// Count returns the number of (possibly overlapping) matches in text.
	Count(text []byte) int
}

// Engine is a single-pattern exact matcher.
type Engine interface {
	Name() string
	Compile(pattern []byte) (Counter, error)
}

// GapEngine is a bounded-gap matcher parameterized by the maximum run of
// non-matching symbols tolerated between consecutive pattern symbols.
type GapEngine interface {
	Name() string
	Compile(pattern []byte, k int) (Counter, error)
}

// MultiCounter is a compiled pattern set searched in a single pass.
type MultiCounter interface {
	// Count returns one match count per pattern, in input order.
	Count(text []byte) []int
}

var (
	engines    = map[string]Engine{}
	gapEngines = map[string]GapEngine{}
)

// Register makes an exact engine selectable by name (last wins).
func Register(e Engine) { engines[e.Name()] = e }

// RegisterGap makes a gap engine selectable by name (last wins).
func RegisterGap(e GapEngine) { gapEngines[e.Name()] = e }

// Lookup returns the exact engine registered under name.
func Lookup(name string) (Engine, bool) {
	e, ok := engines[name]
	return e, ok
}

// LookupGap returns the gap engine registered under name.
func LookupGap(name string) (GapEngine, bool) {
	e, ok := gapEngines[name]
	return e, ok
}

// Names returns all registered engine names, sorted.
func Names() []string {
	out := make([]string, 0, len(engines)+len(gapEngines))
	for n := range engines {
		out = append(out, n)
	}
	for n := range gapEngines {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
