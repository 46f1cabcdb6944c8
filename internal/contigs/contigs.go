// Package contigs groups hit rows by contig, reduces each group to intervals
// and attaches the contig's defect classification.
package contigs

import (
	"fmt"
	"sort"

	"contigmap/internal/blocks"
	"contigmap/internal/classify"
	"contigmap/internal/hit"
)

// Lookup resolves a contig number to its display name.
type Lookup interface {
	Name(num int) (string, bool)
}

// Options carries the genome window and the naming convention.
type Options struct {
	Window blocks.Window
	Scheme classify.Scheme
}

// DefaultOptions uses the HXB2 window and "name::Label" headers.
func DefaultOptions() Options {
	return Options{Window: blocks.DefaultWindow, Scheme: classify.DefaultScheme()}
}

// Result is the reduced, classified view of one contig.
type Result struct {
	ContigNum int
	Name      string
	Label     string
	Bucket    classify.Bucket
	Color     string
	Intervals []blocks.Interval
}

// LookupError reports a contig number with no registered name.
type LookupError struct {
	ContigNum int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("contig %d: no name registered (not among the FASTA headers)", e.ContigNum)
}

// LabelError reports a contig name that does not carry a defect label.
type LabelError struct {
	ContigNum int
	Err       error
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("contig %d: %v", e.ContigNum, e.Err)
}

func (e *LabelError) Unwrap() error { return e.Err }

// GroupAndClassify walks hits once, cutting a new group whenever ContigNum
// changes, so equal contig numbers must be adjacent: a contig whose rows are
// split into several runs yields one Result per run. Results come back in
// order of first appearance. The first name or label failure aborts the
// whole call.
func GroupAndClassify(hits []hit.Hit, names Lookup, opts Options) ([]Result, error) {
	var out []Result
	for start := 0; start < len(hits); {
		end := start + 1
		for end < len(hits) && hits[end].ContigNum == hits[start].ContigNum {
			end++
		}
		r, err := classifyGroup(hits[start:end], names, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		start = end
	}
	return out, nil
}

func classifyGroup(group []hit.Hit, names Lookup, opts Options) (Result, error) {
	num := group[0].ContigNum
	name, ok := names.Name(num)
	if !ok {
		return Result{}, &LookupError{ContigNum: num}
	}
	label, err := opts.Scheme.Label(name)
	if err != nil {
		return Result{}, &LabelError{ContigNum: num, Err: err}
	}
	bucket := classify.BucketOf(label)
	return Result{
		ContigNum: num,
		Name:      name,
		Label:     label,
		Bucket:    bucket,
		Color:     opts.Scheme.Color(label),
		Intervals: blocks.Reduce(group, opts.Window),
	}, nil
}

// Contiguous reports whether every contig number occupies a single run of
// adjacent rows, which GroupAndClassify needs to emit one Result per contig.
func Contiguous(hits []hit.Hit) bool {
	seen := make(map[int]bool)
	for i, h := range hits {
		if i > 0 && hits[i-1].ContigNum == h.ContigNum {
			continue
		}
		if seen[h.ContigNum] {
			return false
		}
		seen[h.ContigNum] = true
	}
	return true
}

// ByContig indexes results by contig number. When a contig appears in
// several runs the later run wins.
func ByContig(results []Result) map[int]Result {
	m := make(map[int]Result, len(results))
	for _, r := range results {
		m[r.ContigNum] = r
	}
	return m
}

// SortByBucket orders results for drawing: intact, hypermut, other defects,
// large deletions. Order within a bucket is preserved.
func SortByBucket(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Bucket.Rank() < results[j].Bucket.Rank()
	})
}

// CountIntervals sums the intervals across results.
func CountIntervals(results []Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Intervals)
	}
	return n
}
