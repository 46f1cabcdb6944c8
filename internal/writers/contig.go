package writers

import (
	"io"

	"contigmap/internal/contigs"
	"contigmap/internal/output"
)

func init() {
	RegisterContig(output.FormatText, writeText)
	RegisterContig(output.FormatJSON, writeJSON)
	RegisterContig(output.FormatJSONL, writeJSONL)
}

// StartContigWriter spins up a writer goroutine for classified contigs.
// Close the returned channel when done; the error channel yields exactly once.
// An unknown format still drains the input so senders never block.
func StartContigWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- contigs.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan contigs.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := WriteContigs(format, out, in, opt)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

func collect(in <-chan contigs.Result, sort bool) []contigs.Result {
	var buf []contigs.Result
	for r := range in {
		buf = append(buf, r)
	}
	if sort {
		contigs.SortByBucket(buf)
	}
	return buf
}

func writeText(w io.Writer, in <-chan contigs.Result, opt Options) error {
	if opt.Sort {
		return output.WriteText(w, collect(in, true), opt.Header)
	}
	return output.StreamText(w, in, opt.Header)
}

func writeJSON(w io.Writer, in <-chan contigs.Result, opt Options) error {
	return output.WriteJSON(w, collect(in, opt.Sort))
}
