// Package hit holds the parsed form of one BLAST alignment row and the CSV
// reader that produces it.
package hit

// Hit is one local alignment between a contig and the reference genome.
// Reference coordinates are 1-based inclusive. RefStart > RefEnd is not
// rejected here; downstream consumers must treat such rows as invalid.
type Hit struct {
	ContigNum int
	RefStart  int
	RefEnd    int

	// Carried through unchanged when the source provides them.
	RefName    string
	Score      int
	Match      float64
	QueryStart int
	QueryEnd   int
}

// Column names understood by ReadCSV.
const (
	ColContigNum  = "contig_num"
	ColRefStart   = "ref_start"
	ColRefEnd     = "ref_end"
	ColRefName    = "ref_name"
	ColScore      = "score"
	ColMatch      = "match"
	ColQueryStart = "start"
	ColQueryEnd   = "end"
)

// Required lists the columns every hit source must provide.
var Required = []string{ColContigNum, ColRefStart, ColRefEnd}
