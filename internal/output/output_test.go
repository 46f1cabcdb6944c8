package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"contigmap/internal/blocks"
	"contigmap/internal/classify"
	"contigmap/internal/contigs"
	"contigmap/internal/landmarks"
	"contigmap/pkg/api"
)

func sample() []contigs.Result {
	return []contigs.Result{
		{
			ContigNum: 1, Name: "a::Intact", Label: "Intact", Bucket: classify.BucketIntact, Color: "green",
			Intervals: []blocks.Interval{{Start: 700, End: 7000}, {Start: 8000, End: 9604}},
		},
		{ContigNum: 2, Name: "b::Hypermut", Label: "Hypermut", Bucket: classify.BucketHypermut, Color: "red"},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sample(), true); err != nil {
		t.Fatalf("text write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %q", buf.String())
	}
	if lines[0] != TSVHeader {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1\ta::Intact\tIntact\tintact\tgreen\t700\t7000" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestStreamTextNoHeader(t *testing.T) {
	in := make(chan contigs.Result, 2)
	for _, r := range sample() {
		in <- r
	}
	close(in)
	var buf bytes.Buffer
	if err := StreamText(&buf, in, false); err != nil {
		t.Fatalf("stream: %v", err)
	}
	if strings.HasPrefix(buf.String(), "contig_num") {
		t.Fatalf("header should be suppressed")
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Fatalf("want 2 rows, got %d", n)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.ContigV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json round-trip failed: %v %v", err, got)
	}
	if got[0].Bucket != "intact" || got[0].Intervals[1].End != 9604 {
		t.Fatalf("unexpected contig: %+v", got[0])
	}
	if !strings.Contains(buf.String(), `"intervals": []`) {
		t.Fatalf("empty contig should encode intervals as []: %s", buf.String())
	}
}

func TestWriteLandmarks(t *testing.T) {
	tracks := []landmarks.Track{
		{Frame: 0, Regions: []landmarks.Region{{Name: "LTR", Start: 1, End: 634, Colour: "lightgrey"}}},
		{Frame: 1, Regions: []landmarks.Region{{Name: "gag", Start: 790, End: 2292, Frame: 1, Colour: "green"}}},
	}
	var buf bytes.Buffer
	if err := WriteLandmarksText(&buf, tracks, true); err != nil {
		t.Fatalf("text: %v", err)
	}
	want := LandmarkTSVHeader + "\n1\t0\tLTR\t1\t634\tlightgrey\n2\t1\tgag\t790\t2292\tgreen\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}

	buf.Reset()
	if err := WriteLandmarksJSON(&buf, "ref", tracks); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got api.LandmarksV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Reference != "ref" || len(got.Tracks) != 2 || got.Tracks[1].Regions[0].Name != "gag" {
		t.Fatalf("unexpected: %+v", got)
	}
}
