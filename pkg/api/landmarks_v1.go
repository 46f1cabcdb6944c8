// pkg/api/landmarks_v1.go
package api

// RegionV1 is one resolved landmark.
type RegionV1 struct {
	Name   string `json:"name"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Colour string `json:"colour,omitempty"`
}

// TrackV1 is a run of landmarks drawn on the same row.
type TrackV1 struct {
	Frame   int        `json:"frame"`
	Regions []RegionV1 `json:"regions"`
}

// LandmarksV1 is the landmark layout of one reference.
type LandmarksV1 struct {
	Reference string    `json:"reference"`
	Tracks    []TrackV1 `json:"tracks"`
}
