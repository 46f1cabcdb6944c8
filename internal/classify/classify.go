// Package classify derives a contig's defect label from its display name and
// maps labels onto the buckets and colors used to draw them.
package classify

import (
	"errors"
	"fmt"
	"strings"
)

// Recognized labels. Anything else lands in BucketOther.
const (
	LabelIntact        = "Intact"
	LabelHypermut      = "Hypermut"
	LabelLargeDeletion = "LargeDeletion"
)

// Bucket is the coarse defect category a label collapses into.
type Bucket string

const (
	BucketIntact   Bucket = "intact"
	BucketHypermut Bucket = "hypermut"
	BucketLargeDel Bucket = "largedel"
	BucketOther    Bucket = "other_defect"
)

// BucketOf maps a raw label onto its bucket.
func BucketOf(label string) Bucket {
	switch label {
	case LabelIntact:
		return BucketIntact
	case LabelHypermut:
		return BucketHypermut
	case LabelLargeDeletion:
		return BucketLargeDel
	default:
		return BucketOther
	}
}

// Color is the track color of the bucket.
func (b Bucket) Color() string {
	switch b {
	case BucketIntact:
		return "green"
	case BucketHypermut:
		return "red"
	case BucketLargeDel:
		return "orange"
	default:
		return "brown"
	}
}

// Rank is the bucket's position in the figure, top to bottom.
func (b Bucket) Rank() int {
	switch b {
	case BucketIntact:
		return 0
	case BucketHypermut:
		return 1
	case BucketOther:
		return 2
	default:
		return 3
	}
}

// Buckets lists every bucket in draw order.
func Buckets() []Bucket {
	return []Bucket{BucketIntact, BucketHypermut, BucketOther, BucketLargeDel}
}

// DefaultDelimiter separates the contig name from its defect token.
const DefaultDelimiter = "::"

// DefaultPalette gives per-label colors; labels without an entry use their
// bucket color.
func DefaultPalette() map[string]string {
	return map[string]string{
		"Intact":                    "green",
		"Hypermut":                  "red",
		"LargeDeletion":             "orange",
		"5DEFECT":                   "purple",
		"5DEFECT_GagNoATGGagFailed": "purple",
		"5DEFECT_GagNoATGGagPassed": "purple",
		"InternalInversion":         "purple",
		"NonHIV":                    "purple",
		"PrematureStop_OR_AAtooLong_OR_AAtooShort": "purple",
	}
}

// Scheme describes how names are split into labels and labels into colors.
type Scheme struct {
	Delimiter string
	Token     int // index of the label among the delimiter-separated parts
	Palette   map[string]string
}

// DefaultScheme splits "name::Label" and takes the label.
func DefaultScheme() Scheme {
	return Scheme{Delimiter: DefaultDelimiter, Token: 1, Palette: DefaultPalette()}
}

// Label extracts the raw defect label from a display name.
func (s Scheme) Label(name string) (string, error) {
	if s.Delimiter == "" {
		return "", errors.New("empty label delimiter")
	}
	parts := strings.Split(name, s.Delimiter)
	if s.Token < 0 || s.Token >= len(parts) {
		return "", fmt.Errorf("name %q has no label at position %d after splitting on %q", name, s.Token, s.Delimiter)
	}
	return parts[s.Token], nil
}

// Color returns the palette entry for label, falling back to the bucket color.
func (s Scheme) Color(label string) string {
	if c := s.Palette[label]; c != "" {
		return c
	}
	return BucketOf(label).Color()
}
