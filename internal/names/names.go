// Package names numbers the contigs of a FASTA file so hit rows, which refer
// to contigs by position, can be labeled with the contig's header.
package names

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"gopkg.in/yaml.v3"

	"contigmap/internal/input"
)

// Names maps a 1-based contig number (FASTA record order) to its full header.
type Names map[int]string

// Name implements contigs.Lookup.
func (n Names) Name(num int) (string, bool) {
	s, ok := n[num]
	return s, ok
}

// Load reads the headers of the FASTA file at path ("-" for stdin, gzip accepted).
func Load(ctx context.Context, path string) (Names, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	n, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Read numbers the records of r from 1. The header is kept whole: the
// record ID and its description, joined by a single space.
func Read(ctx context.Context, r io.Reader) (Names, error) {
	template := &linear.Seq{Annotation: seq.Annotation{Alpha: alphabet.DNAredundant}}
	fr := fasta.NewReader(r, template)

	out := Names{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := fr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		name := s.Name()
		if d := s.Description(); d != "" {
			name += " " + d
		}
		out[len(out)+1] = name
	}
	return out, nil
}

// WriteYAML dumps the table as a YAML mapping keyed by contig number.
func WriteYAML(w io.Writer, n Names) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(map[int]string(n)); err != nil {
		return err
	}
	return enc.Close()
}
