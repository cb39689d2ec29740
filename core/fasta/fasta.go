// core/fasta/fasta.go
// Package fasta reads sequence corpora from FASTA files (plain, gzipped, or
// stdin via "-") so experiments can run against standard reference data as
// well as the line-oriented dataset format.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and emits one Record per entry. It is
// cancelable, returning promptly when ctx is done, even mid-record. emit may
// return a non-nil error to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)
	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadAll collects every record from r.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	var out []Record
	err := StreamCtx(ctx, r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadAllPath opens path (gzip and "-" handled) and collects every record.
func ReadAllPath(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadAll(ctx, rc)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
