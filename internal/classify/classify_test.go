package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	s := DefaultScheme()

	got, err := s.Label("contigA::Intact")
	require.NoError(t, err)
	assert.Equal(t, "Intact", got)

	got, err = s.Label("1-HIV1-B::PrematureStop_OR_AAtooLong_OR_AAtooShort::extra")
	require.NoError(t, err)
	assert.Equal(t, "PrematureStop_OR_AAtooLong_OR_AAtooShort", got)

	got, err = s.Label("contigA::")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestLabelMissingToken(t *testing.T) {
	_, err := DefaultScheme().Label("contigA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"contigA"`)
}

func TestLabelCustomScheme(t *testing.T) {
	s := Scheme{Delimiter: "|", Token: 2}
	got, err := s.Label("a|b|Hypermut")
	require.NoError(t, err)
	assert.Equal(t, "Hypermut", got)

	_, err = Scheme{Delimiter: "", Token: 1}.Label("a::b")
	assert.Error(t, err)
}

func TestBucketOf(t *testing.T) {
	cases := map[string]Bucket{
		"Intact":            BucketIntact,
		"Hypermut":          BucketHypermut,
		"LargeDeletion":     BucketLargeDel,
		"WeirdLabel":        BucketOther,
		"5DEFECT":           BucketOther,
		"InternalInversion": BucketOther,
		"intact":            BucketOther,
		"":                  BucketOther,
	}
	for label, want := range cases {
		assert.Equal(t, want, BucketOf(label), label)
	}
}

func TestColor(t *testing.T) {
	s := DefaultScheme()
	assert.Equal(t, "green", s.Color("Intact"))
	assert.Equal(t, "purple", s.Color("NonHIV"))
	assert.Equal(t, "brown", s.Color("WeirdLabel"))
	assert.Equal(t, "brown", s.Color("5DFECT_IntoGag"))

	s.Palette = nil
	assert.Equal(t, "orange", s.Color("LargeDeletion"))
}

func TestBucketsDrawOrder(t *testing.T) {
	assert.Equal(t, []Bucket{BucketIntact, BucketHypermut, BucketOther, BucketLargeDel}, Buckets())
}

func TestRankMatchesDrawOrder(t *testing.T) {
	for i, b := range Buckets() {
		assert.Equal(t, i, b.Rank(), string(b))
	}
}
