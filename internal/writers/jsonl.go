// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"contigmap/internal/contigs"
	"contigmap/internal/jsonlutil"
	"contigmap/internal/output"
)

// writeJSONL emits each contig as one JSON line (v1). Sorting buffers the
// whole input first.
func writeJSONL(w io.Writer, in <-chan contigs.Result, opt Options) error {
	src := in
	if opt.Sort {
		sorted := collect(in, true)
		ch := make(chan contigs.Result, len(sorted))
		for _, r := range sorted {
			ch <- r
		}
		close(ch)
		src = ch
	}
	return jsonlutil.Encode[contigs.Result](w, src,
		func(enc *json.Encoder, r contigs.Result) error {
			return enc.Encode(output.ToAPIContig(r))
		},
		IsBrokenPipe,
	)
}
