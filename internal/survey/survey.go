// Package survey digests a record set with many enzymes in parallel and
// scores every enzyme.
package survey

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"radselect/internal/collector"
	"radselect/internal/digest"
	"radselect/internal/enzyme"
	"radselect/internal/fasta"
	"radselect/internal/rank"
	"radselect/internal/score"
)

type Config struct {
	Scorer        score.Scorer
	Threads       int  // enzyme workers (>=1)
	Options       digest.Options
	KeepFragments bool // attach exported fragments to each message
}

// Run scores every enzyme against all records, one worker per enzyme, and
// sends exactly one message per enzyme to sink. Unsupported enzymes are sent
// with a nil tally. Records must not be modified while Run is active.
// On cancellation Run returns ctx.Err(); anything already sent is partial.
func Run(ctx context.Context, cfg Config, enzymes []enzyme.Enzyme, records []fasta.Record, sink chan<- collector.Msg) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)

	for i, e := range enzymes {
		i, e := i, e
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			msg, err := digestAll(gctx, cfg, e, records)
			if err != nil {
				return err
			}
			msg.Idx = i
			select {
			case sink <- msg:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func digestAll(ctx context.Context, cfg Config, e enzyme.Enzyme, records []fasta.Record) (collector.Msg, error) {
	msg := collector.Msg{Enzyme: e}
	plan, err := digest.Compile(e, cfg.Options)
	if errors.Is(err, digest.ErrUnsupported) {
		return msg, nil
	}
	if err != nil {
		return msg, err
	}

	t := rank.NewTally(e.Name, e.Recognition)
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return msg, err
		}
		frags := plan.Digest(rec.Seq)
		t.Add(rec.ID, cfg.Scorer.Score(digest.Lengths(frags)))
		if cfg.KeepFragments {
			msg.Fragments = append(msg.Fragments, collector.Fragments{Chr: rec.ID, Frags: qualifying(cfg.Scorer, frags)})
		}
	}
	msg.Tally = t
	return msg, nil
}

// qualifying keeps the fragments that count under s. Site counting keeps
// them all.
func qualifying(s score.Scorer, frags []digest.Fragment) []digest.Fragment {
	if s.Mode == score.SiteCount {
		return frags
	}
	out := frags[:0:0]
	for _, f := range frags {
		if s.Window.Contains(f.Len()) {
			out = append(out, f)
		}
	}
	return out
}

// Survey runs the workers and a collector together and returns the
// completed tallies. Nothing is returned for a run that did not finish.
func Survey(ctx context.Context, cfg Config, enzymes []enzyme.Enzyme, records []fasta.Record, copts collector.Options) (collector.Result, error) {
	in, done := collector.New(copts)
	err := Run(ctx, cfg, enzymes, records, in)
	close(in)
	res := <-done
	if err != nil {
		return collector.Result{}, err
	}
	if res.Err != nil {
		return collector.Result{}, fmt.Errorf("write output: %w", res.Err)
	}
	return res, nil
}
