package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"radselect/internal/fasta"
)

// Make returns an upper‑case DNA sequence of given length with ~gc fraction GC.
// If seed==0 we use a time-based seed; otherwise results are reproducible.
func Make(length int, gc float64, seed int64) []byte {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return fill(rand.New(rand.NewSource(seed)), length, gc)
}

// Genome returns n records named sim1..simN, each of the given length and
// GC fraction. Record i is Make(length, gc, s+i) for a base seed s.
func Genome(n, length int, gc float64, seed int64) []fasta.Record {
	if n <= 0 {
		return nil
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	recs := make([]fasta.Record, n)
	for i := range recs {
		s := seed + int64(i)
		if s == 0 {
			s = math.MaxInt64 // 0 would ask Make for a time-based seed
		}
		recs[i] = fasta.Record{ID: fmt.Sprintf("sim%d", i+1), Seq: Make(length, gc, s)}
	}
	return recs
}

func fill(r *rand.Rand, length int, gc float64) []byte {
	if length <= 0 {
		return []byte{}
	}
	gc = min(max(gc, 0), 1)

	gcCount := int(float64(length)*gc + 0.5) // nearest integer
	gcCount = min(max(gcCount, 0), length)

	seq := make([]byte, length)

	// Fill exact composition.
	for i := 0; i < gcCount; i++ {
		seq[i] = "GC"[r.Intn(2)]
	}
	for i := gcCount; i < length; i++ {
		seq[i] = "AT"[r.Intn(2)]
	}

	// Shuffle to disperse bases.
	r.Shuffle(length, func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	return seq
}
