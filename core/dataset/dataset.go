// core/dataset/dataset.go
// Package dataset reads the experiment input files: line-oriented sequence
// and pattern corpora, plus the optional expected-count (answers) table used
// by the driver for validation.
//
// Strings file: a header line "count maxLen", then one string per line.
// Answers file: a header line "rows cols [k]", then one comma-separated row
// of counts per pattern, one column per sequence.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Answers is the expected-count table. Counts[p][s] is the expected match
// count of pattern p in sequence s. K carries the gap parameter from the
// header; it is 0 when the header has only two fields.
type Answers struct {
	Counts [][]int
	K      int
}

func readHeader(sc *bufio.Scanner, name string) ([]int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%s: read header: %w", name, err)
		}
		return nil, fmt.Errorf("%s: missing header line", name)
	}
	fields := strings.Fields(sc.Text())
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%s: bad header field %q: %w", name, f, err)
		}
		nums = append(nums, v)
	}
	return nums, nil
}

// ParseStrings reads a sequences or patterns corpus from r. The name is used
// only in error messages.
func ParseStrings(r io.Reader, name string) ([][]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	header, err := readHeader(sc, name)
	if err != nil {
		return nil, err
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("%s: empty header line", name)
	}
	count := header[0]

	out := make([][]byte, 0, count)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		out = append(out, []byte(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: scan: %w", name, err)
	}
	if len(out) != count {
		return nil, fmt.Errorf("%s: read %d lines, header promised %d", name, len(out), count)
	}
	return out, nil
}

// ParseAnswers reads the expected-count table from r.
func ParseAnswers(r io.Reader, name string) (*Answers, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	header, err := readHeader(sc, name)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: header needs rows and cols", name)
	}
	rows, cols := header[0], header[1]
	ans := &Answers{Counts: make([][]int, 0, rows)}
	if len(header) > 2 {
		ans.K = header[2]
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != cols {
			return nil, fmt.Errorf("%s: row %d: %d values, want %d",
				name, len(ans.Counts)+1, len(fields), cols)
		}
		row := make([]int, cols)
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad count %q: %w",
					name, len(ans.Counts)+1, f, err)
			}
			row[i] = v
		}
		ans.Counts = append(ans.Counts, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: scan: %w", name, err)
	}
	if len(ans.Counts) != rows {
		return nil, fmt.Errorf("%s: read %d rows, header promised %d", name, len(ans.Counts), rows)
	}
	return ans, nil
}

// ReadStrings loads a sequences or patterns file from path.
func ReadStrings(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStrings(f, path)
}

// ReadAnswers loads an answers file from path.
func ReadAnswers(path string) (*Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseAnswers(f, path)
}
