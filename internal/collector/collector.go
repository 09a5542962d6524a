package collector

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"radselect/internal/digest"
	"radselect/internal/enzyme"
	"radselect/internal/gff"
	"radselect/internal/rank"
)

// Fragments are the exported fragments of one record.
type Fragments struct {
	Chr   string
	Frags []digest.Fragment
}

// Msg delivers one finished enzyme. Idx fixes its place in the output.
type Msg struct {
	Idx       int
	Enzyme    enzyme.Enzyme
	Tally     *rank.Tally // nil when the enzyme was skipped
	Fragments []Fragments // only filled when fragment export is on
}

type Options struct {
	Out     io.Writer // progress lines; nil discards them
	Verbose bool      // one line per record
	GFF     io.Writer // optional fragment export
}

// Result is emitted after the input channel closes.
type Result struct {
	Tallies map[string]*rank.Tally
	Skipped []string
	Err     error // first write error, if any
}

type emitter struct {
	opt Options
	out *bufio.Writer
	gff *bufio.Writer
	res Result
}

func (e *emitter) fail(err error) {
	if err != nil && e.res.Err == nil {
		e.res.Err = err
	}
}

func (e *emitter) emit(m Msg) {
	if m.Tally == nil {
		e.res.Skipped = append(e.res.Skipped, m.Enzyme.Name)
		return
	}
	e.res.Tallies[m.Enzyme.Name] = m.Tally

	if e.out != nil && e.res.Err == nil {
		fmt.Fprintf(e.out, "enzyme is %s, cuts at %s\n", m.Tally.Enzyme, m.Tally.Site)
		if e.opt.Verbose {
			for _, id := range m.Tally.Records() {
				fmt.Fprintf(e.out, "%s has %d RADseq tags\n", id, m.Tally.Count(id))
			}
		}
		fmt.Fprintf(e.out, "In total, %d RADseq tags were found for this enzyme\n", m.Tally.Total)
		e.fail(e.out.Flush())
	}
	if e.gff != nil && e.res.Err == nil {
		for _, f := range m.Fragments {
			e.fail(gff.WriteFragments(e.gff, m.Enzyme.Name, f.Chr, f.Frags))
		}
	}
}

// New starts the collector goroutine.
//   • send Msg values on the returned chan, in any order
//   • close the chan when workers are done
//   • read the final Result from the second chan
func New(opt Options) (chan<- Msg, <-chan Result) {
	e := &emitter{opt: opt, res: Result{Tallies: make(map[string]*rank.Tally)}}
	if opt.Out != nil {
		e.out = bufio.NewWriter(opt.Out)
	}
	if opt.GFF != nil {
		e.gff = bufio.NewWriter(opt.GFF)
		e.fail(gff.WriteHeader(e.gff))
	}

	in := make(chan Msg)
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		pending := make(map[int]Msg)
		next := 0
		for msg := range in {
			pending[msg.Idx] = msg
			for {
				m, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				e.emit(m)
				next++
			}
		}

		// gaps only happen when the run was cut short
		rest := make([]int, 0, len(pending))
		for idx := range pending {
			rest = append(rest, idx)
		}
		sort.Ints(rest)
		for _, idx := range rest {
			e.emit(pending[idx])
		}

		if e.gff != nil {
			e.fail(e.gff.Flush())
		}
		out <- e.res
	}()

	return in, out
}
