// internal/runner/runner.go
// Package runner drives one experiment: compile each pattern once, search
// every sequence, and validate counts against the expected-answer table.
//
// The engines themselves are single-threaded; parallelism here is at the
// granularity of one (compiled pattern, sequence) pair per worker, sharing
// the compiled pattern read-only.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gapscan-core/ahocorasick"
	"gapscan-core/dataset"
	"gapscan-core/match"

	"gapscan/internal/logger"
	"gapscan/internal/writers"
)

// MultiPattern is the registry name of the multi-pattern automaton engine,
// which compiles the whole pattern set at once instead of per pattern.
const MultiPattern = "ac"

// Options selects the engine and carries the experiment inputs.
type Options struct {
	Algorithm string
	Sequences [][]byte
	Patterns  [][]byte
	Answers   *dataset.Answers // optional validation table
	K         int              // gap bound, gap engines only
	Threads   int              // worker count; <1 means 1
}

// Run executes the experiment and returns its report. Compile errors and
// unknown algorithm names are returned as errors; count mismatches are not
// errors, they are recorded in the report.
func Run(ctx context.Context, opts Options) (*writers.Report, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns to search for")
	}
	if opts.Threads < 1 {
		opts.Threads = 1
	}

	start := time.Now()
	counts, err := runCounts(ctx, opts)
	if err != nil {
		return nil, err
	}
	runtime := time.Since(start).Seconds()

	rep := &writers.Report{
		Algorithm: opts.Algorithm,
		Language:  "go",
		Patterns:  len(opts.Patterns),
		Sequences: len(opts.Sequences),
		Runtime:   runtime,
	}
	if _, ok := match.LookupGap(opts.Algorithm); ok {
		rep.MaxGap = opts.K
	}
	for p := range counts {
		for s := range counts[p] {
			rep.TotalMatches += counts[p][s]
		}
	}
	rep.Mismatches = validate(counts, opts.Answers)
	return rep, nil
}

// runCounts produces the full pattern × sequence count matrix.
func runCounts(ctx context.Context, opts Options) ([][]int, error) {
	if opts.Algorithm == MultiPattern {
		return runMulti(ctx, opts)
	}

	compile, err := compiler(opts)
	if err != nil {
		return nil, err
	}

	counts := make([][]int, len(opts.Patterns))
	for pi, pat := range opts.Patterns {
		c, err := compile(pat)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", pi+1, err)
		}
		row, err := countAll(ctx, opts.Threads, opts.Sequences, c.Count)
		if err != nil {
			return nil, err
		}
		counts[pi] = row
	}
	return counts, nil
}

// compiler resolves the per-pattern compile function for the selected
// engine, binding the gap parameter for gap engines.
func compiler(opts Options) (func([]byte) (match.Counter, error), error) {
	if e, ok := match.Lookup(opts.Algorithm); ok {
		return e.Compile, nil
	}
	if g, ok := match.LookupGap(opts.Algorithm); ok {
		k := opts.K
		return func(pat []byte) (match.Counter, error) { return g.Compile(pat, k) }, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (have %v and %q)", opts.Algorithm, match.Names(), MultiPattern)
}

// runMulti compiles the whole pattern set once and makes one automaton pass
// per sequence.
func runMulti(ctx context.Context, opts Options) ([][]int, error) {
	a, err := ahocorasick.Build(opts.Patterns)
	if err != nil {
		return nil, err
	}
	logger.Debug("multi-pattern automaton built",
		"patterns", len(opts.Patterns), "states", a.NumStates())

	perSeq := make([][]int, len(opts.Sequences))
	err = forEachSequence(ctx, opts.Threads, len(opts.Sequences), func(si int) {
		perSeq[si] = a.Count(opts.Sequences[si])
	})
	if err != nil {
		return nil, err
	}

	counts := make([][]int, len(opts.Patterns))
	for pi := range counts {
		counts[pi] = make([]int, len(opts.Sequences))
		for si := range perSeq {
			counts[pi][si] = perSeq[si][pi]
		}
	}
	return counts, nil
}

// countAll searches every sequence with one compiled pattern, fanning out
// over a bounded worker pool.
func countAll(ctx context.Context, threads int, seqs [][]byte, count func([]byte) int) ([]int, error) {
	row := make([]int, len(seqs))
	err := forEachSequence(ctx, threads, len(seqs), func(si int) {
		row[si] = count(seqs[si])
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// forEachSequence invokes fn(i) for i in [0, n), using up to `threads`
// workers. Each index is written by exactly one worker, so no further
// synchronization is needed on the result slices.
func forEachSequence(ctx context.Context, threads, n int, fn func(int)) error {
	if threads == 1 || n <= 1 {
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			fn(i)
		}
		return nil
	}

	jobs := make(chan int, threads*2)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					fn(i)
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return ctx.Err()
}

// validate compares the count matrix against the answers table. A nil table
// validates nothing.
func validate(counts [][]int, answers *dataset.Answers) []writers.Mismatch {
	if answers == nil {
		return nil
	}
	var out []writers.Mismatch
	for p := range counts {
		if p >= len(answers.Counts) {
			logger.Warn("answers table has fewer rows than patterns", "rows", len(answers.Counts))
			break
		}
		for s := range counts[p] {
			if s >= len(answers.Counts[p]) {
				logger.Warn("answers row shorter than sequence count", "pattern", p+1)
				break
			}
			if counts[p][s] != answers.Counts[p][s] {
				out = append(out, writers.Mismatch{
					Pattern:  p,
					Sequence: s,
					Got:      counts[p][s],
					Want:     answers.Counts[p][s],
				})
			}
		}
	}
	return out
}
