package sim

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gcFrac(b []byte) float64 {
	if len(b) == 0 { return 0 }
	gc := 0
	for _, x := range b {
		if x == 'G' || x == 'C' { gc++ }
	}
	return float64(gc) / float64(len(b))
}

func TestMake_LengthAndGC(t *testing.T) {
	const n = 10000
	seq := Make(n, 0.42, 123)
	require.Len(t, seq, n)
	// nearest-integer rounding
	assert.InDelta(t, 0.42, gcFrac(seq), 0.5/float64(n)+1e-12)
}

func TestMake_SeedDeterministic(t *testing.T) {
	a := Make(5000, 0.50, 42)
	assert.True(t, bytes.Equal(a, Make(5000, 0.50, 42)), "same seed should reproduce sequence")
	assert.False(t, bytes.Equal(a, Make(5000, 0.50, 43)), "different seed produced identical sequence")
}

func TestMake_GCExtremesAndClamp(t *testing.T) {
	assert.NotContains(t, string(Make(1000, 0, 7)), "G")
	assert.NotContains(t, string(Make(1000, 0, 7)), "C")
	assert.NotContains(t, string(Make(1000, 1, 7)), "A")
	assert.NotContains(t, string(Make(1000, 1, 7)), "T")
	assert.Empty(t, Make(0, 0.5, 1))

	assert.Zero(t, gcFrac(Make(100, -0.1, 1)))
	assert.Equal(t, 1.0, gcFrac(Make(100, 1.5, 1)))
	assert.False(t, math.IsNaN(gcFrac(Make(1, 0.5, 1))))
}

func TestGenome(t *testing.T) {
	recs := Genome(3, 2000, 0.4, 9)
	require.Len(t, recs, 3)
	for i, r := range recs {
		assert.Equal(t, "sim"+string(rune('1'+i)), r.ID)
		assert.Len(t, r.Seq, 2000)
		assert.InDelta(t, 0.4, gcFrac(r.Seq), 0.5/2000+1e-12)
	}
	assert.NotEqual(t, recs[0].Seq, recs[1].Seq)

	again := Genome(3, 2000, 0.4, 9)
	assert.Equal(t, recs, again, "same seed should reproduce the genome")

	assert.Equal(t, Make(2000, 0.4, 10), recs[1].Seq, "records derive from consecutive seeds")

	assert.Empty(t, Genome(0, 100, 0.5, 1))
}
