package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tally(name string, counts ...int) *Tally {
	t := NewTally(name, "")
	for i, n := range counts {
		t.Add(string(rune('a'+i)), n)
	}
	return t
}

func TestRank_TiesByName(t *testing.T) {
	got := Rank(map[string]*Tally{
		"Z": tally("Z", 5),
		"X": tally("X", 2, 3),
		"Y": tally("Y", 3),
	})
	assert.Equal(t, []Entry{
		{Total: 3, Enzyme: "Y"},
		{Total: 5, Enzyme: "X"},
		{Total: 5, Enzyme: "Z"},
	}, got)

	best, ok := Best(got)
	require.True(t, ok)
	assert.Equal(t, "Z", best.Enzyme)
}

func TestRank_Empty(t *testing.T) {
	got := Rank(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, ok := Best(got)
	assert.False(t, ok)
}

func TestRank_StableAcrossRuns(t *testing.T) {
	in := map[string]*Tally{}
	for _, n := range []string{"EcoRI", "MseI", "PstI", "SbfI", "AluI", "NlaIII"} {
		in[n] = tally(n, 4)
	}
	first := Rank(in)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Rank(in))
	}
	assert.Equal(t, "AluI", first[0].Enzyme)
}

func TestTally_TotalIsSumOfRecords(t *testing.T) {
	tl := NewTally("EcoRI", "G^AATTC")
	tl.Add("chr1", 3)
	tl.Add("Total", 4) // a record may be called Total
	tl.Add("chr1", 2)
	tl.Add("chr2", 0)

	assert.Equal(t, []string{"chr1", "Total", "chr2"}, tl.Records())
	assert.Equal(t, 5, tl.Count("chr1"))
	assert.Equal(t, 4, tl.Count("Total"))

	sum := 0
	for _, n := range tl.Counts {
		sum += n
	}
	assert.Equal(t, sum, tl.Total)
	assert.Equal(t, 9, tl.Total)
}
