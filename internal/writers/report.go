// internal/writers/report.go
// Package writers renders experiment reports. Formats dispatch through a
// registry (format → handler) instead of switch statements.
package writers

import (
	"encoding/json"
	"fmt"
	"io"
)

// Mismatch is one expected-vs-actual count disagreement.
type Mismatch struct {
	Pattern  int `json:"pattern"`
	Sequence int `json:"sequence"`
	Got      int `json:"got"`
	Want     int `json:"want"`
}

// Report summarizes one experiment run.
type Report struct {
	Algorithm    string     `json:"algorithm"`
	Language     string     `json:"language"`
	Patterns     int        `json:"patterns"`
	Sequences    int        `json:"sequences"`
	MaxGap       int        `json:"max_gap,omitempty"`
	TotalMatches int        `json:"total_matches"`
	Runtime      float64    `json:"runtime"`
	Mismatches   []Mismatch `json:"mismatches,omitempty"`
}

var reportWriters = map[string]func(io.Writer, *Report) error{}

// Register makes a report format available (last wins).
func Register(format string, fn func(io.Writer, *Report) error) {
	reportWriters[format] = fn
}

// Formats returns the registered format names.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	return out
}

// Write renders the report in the given format.
func Write(format string, w io.Writer, r *Report) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}

func writeText(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "---\nlanguage: %s\nalgorithm: %s\n", r.Language, r.Algorithm); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "patterns: %d\nsequences: %d\n", r.Patterns, r.Sequences); err != nil {
		return err
	}
	if r.MaxGap > 0 {
		if _, err := fmt.Fprintf(w, "max_gap: %d\n", r.MaxGap); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "total_matches: %d\nruntime: %.6g\n", r.TotalMatches, r.Runtime); err != nil {
		return err
	}
	for _, m := range r.Mismatches {
		if _, err := fmt.Fprintf(w, "mismatch: pattern %d vs sequence %d (%d != %d)\n",
			m.Pattern+1, m.Sequence+1, m.Got, m.Want); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func init() {
	Register("text", writeText)
	Register("json", writeJSON)
}
