package blocks

import (
	"sort"

	"contigmap/internal/hit"
)

// Interval is a reference region covered by one hit, or by two hits fused
// across the breakpoint.
type Interval struct {
	Start int
	End   int
}

// Reduce turns the hits of a single contig into intervals in one pass over
// the hits sorted by RefStart:
//
//   - a hit starting before w.MinStart is dropped;
//   - a hit whose RefEnd falls inside the breakpoint window is fused with the
//     next hit in sort order into (RefStart, next.RefEnd), and that next hit
//     is consumed;
//   - any other hit yields (RefStart, min(RefEnd, w.MaxEnd)).
//
// Fused intervals are not clamped to MaxEnd, and a hit in the breakpoint
// window with no successor takes the default path. The output is not
// merged further, so intervals may overlap or abut. hits is not modified.
func Reduce(hits []hit.Hit, w Window) []Interval {
	sorted := make([]hit.Hit, len(hits))
	copy(sorted, hits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RefStart < sorted[j].RefStart })

	var out []Interval
	skipNext := false
	for i, h := range sorted {
		if skipNext {
			skipNext = false
			continue
		}
		if h.RefStart < w.MinStart {
			continue
		}
		if w.InBreakpoint(h.RefEnd) && i+1 < len(sorted) {
			out = append(out, Interval{Start: h.RefStart, End: sorted[i+1].RefEnd})
			skipNext = true
			continue
		}
		out = append(out, Interval{Start: h.RefStart, End: min(h.RefEnd, w.MaxEnd)})
	}
	return out
}
