package enzyme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIUPAC_N_MatchesAny(t *testing.T) {
	p, err := CompileMask("N")
	require.NoError(t, err)
	for _, b := range []byte("ACGTacgt") {
		assert.True(t, MatchMask(p, []byte{b}), "N should match %c", b)
	}
}

func TestMatchMask_DegenerateR(t *testing.T) {
	mask, err := CompileMask("ACGTR") // R = A|G
	require.NoError(t, err)
	assert.True(t, MatchMask(mask, []byte("ACGTA")), "R should match A")
	assert.True(t, MatchMask(mask, []byte("acgtg")), "R should match g")
	assert.False(t, MatchMask(mask, []byte("ACGTC")), "R should not match C")
}

func TestMatchMask_SequenceNDoesNotMatch(t *testing.T) {
	mask, err := CompileMask("N")
	require.NoError(t, err)
	assert.False(t, MatchMask(mask, []byte("N")), "sequence 'N' must not match any site base")
	assert.False(t, MatchMask(mask, []byte("R")))
}

func TestCompileMask_InvalidBase(t *testing.T) {
	_, err := CompileMask("GAZTC")
	assert.ErrorIs(t, err, ErrInvalidSite)
}

func TestRevCompMask(t *testing.T) {
	fwd, err := CompileMask("GGTCTC")
	require.NoError(t, err)
	want, err := CompileMask("GAGACC")
	require.NoError(t, err)
	assert.Equal(t, want, RevCompMask(fwd))

	deg, err := CompileMask("ACNR")
	require.NoError(t, err)
	want, err = CompileMask("YNGT")
	require.NoError(t, err)
	assert.Equal(t, want, RevCompMask(deg))
}

func TestIsPalindrome(t *testing.T) {
	for site, want := range map[string]bool{
		"GAATTC":      true,
		"GCCNNNNNGGC": true,
		"CCGC":        false,
		"GGTCTC":      false,
		"CWGC":        false,
		"GCWGC":       true,
	} {
		m, err := CompileMask(site)
		require.NoError(t, err)
		assert.Equal(t, want, IsPalindrome(m), site)
	}
}
