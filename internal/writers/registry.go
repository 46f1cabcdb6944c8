// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"contigmap/internal/contigs"
)

// Options controls presentation for every contig format.
type Options struct {
	Sort   bool // bucket draw order instead of input order
	Header bool
}

// ContigWriterFunc drains in and writes it to w.
type ContigWriterFunc func(w io.Writer, in <-chan contigs.Result, opt Options) error

// ContigWriters maps format → handler. Formats register in init() blocks.
var ContigWriters = map[string]ContigWriterFunc{}

// RegisterContig adds or replaces (last wins) the handler for format.
func RegisterContig(format string, fn ContigWriterFunc) { ContigWriters[format] = fn }

// WriteContigs dispatches to the registered handler for format.
func WriteContigs(format string, w io.Writer, in <-chan contigs.Result, opt Options) error {
	fn, ok := ContigWriters[format]
	if !ok {
		return fmt.Errorf("unknown contig format %q (no writer registered)", format)
	}
	return fn(w, in, opt)
}

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(ContigWriters))
	for f := range ContigWriters {
		out = append(out, f)
	}
	return out
}
