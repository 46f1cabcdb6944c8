// Package landmarks loads gene landmark tables for a reference and lays them
// out as tracks, one track per run of landmarks sharing a reading frame.
package landmarks

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"contigmap/internal/input"
)

// DefaultReference is the coordinate system BLAST hits are reported in.
const DefaultReference = "HIV1-B-FR-K03455-seed"

// Landmark is one named region as written in the YAML file. End and Frame
// are optional.
type Landmark struct {
	Name   string `yaml:"name"`
	Start  int    `yaml:"start"`
	End    *int   `yaml:"end,omitempty"`
	Frame  *int   `yaml:"frame,omitempty"`
	Colour string `yaml:"colour"`
}

// Set is the landmark list for one coordinate system.
type Set struct {
	Coordinates string     `yaml:"coordinates"`
	Landmarks   []Landmark `yaml:"landmarks"`
}

// Region is a resolved landmark with every field filled in.
type Region struct {
	Name   string
	Start  int
	End    int
	Frame  int
	Colour string
}

// Track groups consecutive regions in the same frame.
type Track struct {
	Frame   int
	Regions []Region
}

// Load parses a landmark YAML file.
func Load(path string) ([]Set, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	sets, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sets, nil
}

// Read parses landmark YAML from r.
func Read(r io.Reader) ([]Set, error) {
	var sets []Set
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil && err != io.EOF {
		return nil, err
	}
	return sets, nil
}

// Resolve lays out the landmarks of the set named reference. Frames default
// to 0. A landmark without an end stops one base before the next landmark
// by start position; the last landmark must carry its own end. Tracks keep
// the file order of the landmarks.
func Resolve(sets []Set, reference string) ([]Track, error) {
	var set *Set
	for i := range sets {
		if sets[i].Coordinates == reference {
			set = &sets[i]
			break
		}
	}
	if set == nil {
		return nil, fmt.Errorf("no landmarks for reference %q", reference)
	}

	regions := make([]Region, len(set.Landmarks))
	for i, lm := range set.Landmarks {
		regions[i] = Region{Name: lm.Name, Start: lm.Start, Colour: lm.Colour}
		if lm.Frame != nil {
			regions[i].Frame = *lm.Frame
		}
	}

	byStart := make([]int, len(regions))
	for i := range byStart {
		byStart[i] = i
	}
	sort.SliceStable(byStart, func(a, b int) bool { return regions[byStart[a]].Start < regions[byStart[b]].Start })
	for k, i := range byStart {
		if end := set.Landmarks[i].End; end != nil {
			regions[i].End = *end
			continue
		}
		if k+1 == len(byStart) {
			return nil, fmt.Errorf("landmark %q has no end and no successor", regions[i].Name)
		}
		regions[i].End = regions[byStart[k+1]].Start - 1
	}

	var tracks []Track
	for _, r := range regions {
		if n := len(tracks); n > 0 && tracks[n-1].Frame == r.Frame {
			tracks[n-1].Regions = append(tracks[n-1].Regions, r)
			continue
		}
		tracks = append(tracks, Track{Frame: r.Frame, Regions: []Region{r}})
	}
	return tracks, nil
}
