package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for contig text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "contig_num\tcontig_name\tlabel\tbucket\tcolor\tstart\tend"

// LandmarkTSVHeader is the header row for landmark text output.
const LandmarkTSVHeader = "track\tframe\tname\tstart\tend\tcolour"
