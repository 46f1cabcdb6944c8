// pkg/api/contigs_v1.go
package api

// IntervalV1 is one reduced reference interval (1-based, inclusive).
type IntervalV1 struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ContigV1 is the stable JSON/JSONL schema for one classified contig.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ContigV1 struct {
	ContigNum int          `json:"contig_num"`
	Name      string       `json:"name"`
	Label     string       `json:"label"`
	Bucket    string       `json:"bucket"` // "intact" | "hypermut" | "largedel" | "other_defect"
	Color     string       `json:"color"`
	Intervals []IntervalV1 `json:"intervals"`
}
