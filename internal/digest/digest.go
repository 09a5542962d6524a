package digest

import (
	"fmt"
	"sort"
	"sync"

	"radselect/internal/enzyme"
)

// ErrUnsupported is returned (wrapped) by Compile for catalog entries the
// engine cannot cut with. Callers skip such enzymes.
var ErrUnsupported = enzyme.ErrUnsupported

// Fragment is half-open, 0-based [Start, End).
type Fragment struct {
	Start int
	End   int
}

func (f Fragment) Len() int { return f.End - f.Start }

type matcher struct {
	mask   []uint8
	offset int // top-strand cut, relative to window start
}

type Options struct {
	MidsiteFallback bool // cut site-only entries at len/2 instead of rejecting them
}

// Plan is one compiled enzyme. It is immutable and safe for concurrent use.
type Plan struct {
	Enzyme enzyme.Enzyme
	fwd    matcher
	rev    *matcher // nil when both strands give the same cuts
}

func Compile(e enzyme.Enzyme, opt Options) (Plan, error) {
	site, err := enzyme.ParseSite(e.Recognition, opt.MidsiteFallback)
	if err != nil {
		return Plan{}, fmt.Errorf("enzyme %s: %w", e.Name, err)
	}
	mask, err := enzyme.CompileMask(site.Motif)
	if err != nil {
		return Plan{}, fmt.Errorf("enzyme %s: %w", e.Name, err)
	}
	p := Plan{Enzyme: e, fwd: matcher{mask: mask, offset: site.Cut}}
	// A site read on the bottom strand cuts the top strand where the motif's
	// complement is cut, mirrored into top-strand coordinates.
	rev := matcher{mask: enzyme.RevCompMask(mask), offset: len(mask) - site.BottomCut}
	if !enzyme.IsPalindrome(mask) || rev.offset != p.fwd.offset {
		p.rev = &rev
	}
	return p, nil
}

var intSlicePool = sync.Pool{
	New: func() any { return make([]int, 0, 1024) },
}

func (m matcher) scan(seq []byte, cuts []int) []int {
	n := len(m.mask)
	if n == 0 || len(seq) < n {
		return cuts
	}
	for pos := 0; pos <= len(seq)-n; pos++ {
		if enzyme.MatchMask(m.mask, seq[pos:pos+n]) {
			if c := pos + m.offset; c > 0 && c < len(seq) {
				cuts = append(cuts, c)
			}
		}
	}
	return cuts
}

// cuts appends sorted, de-duplicated interior cut positions to dst.
func (p Plan) cuts(seq []byte, dst []int) []int {
	dst = p.fwd.scan(seq, dst)
	if p.rev == nil {
		return dst // single forward scan is already sorted and unique
	}
	dst = p.rev.scan(seq, dst)
	sort.Ints(dst)
	out := dst[:0]
	for i, c := range dst {
		if i == 0 || c != dst[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// Digest cuts seq at every site and returns the fragments left to right.
// No site yields one fragment spanning the whole sequence.
func (p Plan) Digest(seq []byte) []Fragment {
	cuts := intSlicePool.Get().([]int)[:0]
	cuts = p.cuts(seq, cuts)
	defer intSlicePool.Put(cuts[:0])

	out := make([]Fragment, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		out = append(out, Fragment{Start: prev, End: c})
		prev = c
	}
	return append(out, Fragment{Start: prev, End: len(seq)})
}

// Lengths maps fragments to their lengths.
func Lengths(frags []Fragment) []int {
	out := make([]int, len(frags))
	for i, f := range frags {
		out[i] = f.Len()
	}
	return out
}

// Convenience: compile plan per call.
func Digest(e enzyme.Enzyme, seq []byte) ([]Fragment, error) {
	p, err := Compile(e, Options{})
	if err != nil {
		return nil, err
	}
	return p.Digest(seq), nil
}
