package output

import (
	"fmt"
	"io"

	"contigmap/internal/jsonutil"
	"contigmap/internal/landmarks"
	"contigmap/pkg/api"
)

// ToAPILandmarks converts resolved tracks to the wire schema (v1).
func ToAPILandmarks(reference string, tracks []landmarks.Track) api.LandmarksV1 {
	v := api.LandmarksV1{Reference: reference, Tracks: make([]api.TrackV1, 0, len(tracks))}
	for _, t := range tracks {
		tv := api.TrackV1{Frame: t.Frame, Regions: make([]api.RegionV1, 0, len(t.Regions))}
		for _, r := range t.Regions {
			tv.Regions = append(tv.Regions, api.RegionV1{Name: r.Name, Start: r.Start, End: r.End, Colour: r.Colour})
		}
		v.Tracks = append(v.Tracks, tv)
	}
	return v
}

// WriteLandmarksText writes one TSV row per landmark, numbering tracks from 1.
func WriteLandmarksText(w io.Writer, tracks []landmarks.Track, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, LandmarkTSVHeader); err != nil {
			return err
		}
	}
	for i, t := range tracks {
		for _, r := range t.Regions {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%s\n", i+1, t.Frame, r.Name, r.Start, r.End, r.Colour); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteLandmarksJSON writes the landmark layout as one indented JSON document.
func WriteLandmarksJSON(w io.Writer, reference string, tracks []landmarks.Track) error {
	return jsonutil.EncodePretty(w, ToAPILandmarks(reference, tracks))
}
