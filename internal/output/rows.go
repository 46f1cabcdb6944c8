package output

import (
	"fmt"

	"contigmap/internal/contigs"
)

// FormatRowsTSV returns one row per interval (no trailing newlines).
// A contig without intervals has no rows.
func FormatRowsTSV(r contigs.Result) []string {
	rows := make([]string, 0, len(r.Intervals))
	for _, iv := range r.Intervals {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%d\t%d",
			r.ContigNum, r.Name, r.Label, r.Bucket, r.Color, iv.Start, iv.End))
	}
	return rows
}
