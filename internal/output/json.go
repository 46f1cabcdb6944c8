package output

import (
	"io"

	"contigmap/internal/contigs"
	"contigmap/internal/jsonutil"
	"contigmap/pkg/api"
)

// ToAPIContig converts a domain Result to the stable wire schema (v1).
// Intervals is never nil so empty contigs encode as [].
func ToAPIContig(r contigs.Result) api.ContigV1 {
	v := api.ContigV1{
		ContigNum: r.ContigNum,
		Name:      r.Name,
		Label:     r.Label,
		Bucket:    string(r.Bucket),
		Color:     r.Color,
		Intervals: make([]api.IntervalV1, 0, len(r.Intervals)),
	}
	for _, iv := range r.Intervals {
		v.Intervals = append(v.Intervals, api.IntervalV1{Start: iv.Start, End: iv.End})
	}
	return v
}

func toAPIContigs(list []contigs.Result) []api.ContigV1 {
	out := make([]api.ContigV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIContig(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 contigs (pretty-indented).
func WriteJSON(w io.Writer, list []contigs.Result) error {
	return jsonutil.EncodePretty(w, toAPIContigs(list))
}
