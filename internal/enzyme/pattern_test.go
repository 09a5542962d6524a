package enzyme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCaret(t *testing.T) {
	site, cut, ok := StripCaret("G^AATTC")
	assert.True(t, ok)
	assert.Equal(t, "GAATTC", site)
	assert.Equal(t, 1, cut)

	site, _, ok = StripCaret("AAAA")
	assert.False(t, ok)
	assert.Equal(t, "AAAA", site)
}

func TestParseSite(t *testing.T) {
	tests := []struct {
		recog string
		want  Site
	}{
		{"G^AATTC", Site{Motif: "GAATTC", Cut: 1, BottomCut: 5}},
		{"^GATC", Site{Motif: "GATC", Cut: 0, BottomCut: 4}},
		{"CATG^", Site{Motif: "CATG", Cut: 4, BottomCut: 0}},
		{"GGTCTC(1/5)", Site{Motif: "GGTCTC", Cut: 7, BottomCut: 11}},
		{"TCCRAC(20/18)", Site{Motif: "TCCRAC", Cut: 26, BottomCut: 24}},
		{"GACNNN(-3/-1)", Site{Motif: "GACNNN", Cut: 3, BottomCut: 5}},
		{" gcc^nnnnnggc ", Site{Motif: "gccnnnnnggc", Cut: 3, BottomCut: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.recog, func(t *testing.T) {
			got, err := ParseSite(tt.recog, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSite_Unsupported(t *testing.T) {
	for _, recog := range []string{
		"(10/15)ACNNNNGTAYC(12/7)",
		"CGTCGT",
		"CCGATCC(?/?)",
		"GGTCTC(1/?)",
	} {
		_, err := ParseSite(recog, false)
		assert.ErrorIs(t, err, ErrUnsupported, recog)
	}
}

func TestParseSite_MidsiteFallback(t *testing.T) {
	got, err := ParseSite("AAAA", true)
	require.NoError(t, err)
	assert.Equal(t, Site{Motif: "AAAA", Cut: 2, BottomCut: 2}, got)

	// both-sided cutters stay unsupported
	_, err = ParseSite("(8/13)GACNNNNNNTGG(12/7)", true)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestParseSite_Invalid(t *testing.T) {
	for _, recog := range []string{"", "G^AAXTC", "GGTCTC(a/5)", "GGTCTC(1/x)", "GGTCTC(1)", "^"} {
		_, err := ParseSite(recog, false)
		assert.Error(t, err, recog)
		assert.NotErrorIs(t, err, ErrUnsupported, recog)
	}
}
