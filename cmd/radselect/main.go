package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"radselect/internal/collector"
	"radselect/internal/digest"
	"radselect/internal/enzyme"
	"radselect/internal/fasta"
	"radselect/internal/rank"
	"radselect/internal/report"
	"radselect/internal/score"
	"radselect/internal/sim"
	"radselect/internal/survey"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	seqfile    string
	enzymes    string
	list       bool
	count      bool
	minLen     int
	maxLen     int
	verbose    bool
	threads    int
	jsonPath   string
	gffPath    string
	midsite    bool
	simLen     int
	simGC      float64
	simSeed    int64
	simRecords int
	showVer    bool
}

// optionError is a bad command line; it is reported together with usage.
type optionError struct{ msg string }

func (e *optionError) Error() string { return e.msg }

func optionErrorf(format string, a ...any) error {
	return &optionError{msg: fmt.Sprintf(format, a...)}
}

func warnf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, "WARN: "+format+"\n", a...)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opt options
	cmd := &cobra.Command{
		Use:   "radselect -s <ref.fa|-> [options]",
		Short: "rank restriction enzymes by RADseq fragments in a size window",
		Long: `radselect: in-silico digest of a FASTA reference with every catalog enzyme.

Each enzyme cuts every record; fragments strictly between --min-length and
--max-length are counted (or cut sites with --count). Enzymes are printed
least to most qualifying, so the best candidate comes last.`,
		Example: `  # Survey every enzyme for 200-600 bp fragments
  radselect -s ref.fa
  # Count cut sites of two enzymes in a gzipped reference, per record
  radselect -s ref.fa.gz -e EcoRI,MseI -c -v
  # Quick look at a simulated 1 Mb genome with 40% GC, JSON summary
  radselect --sim-len 1000000 --sim-gc 0.4 --sim-seed 7 --json run.json`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return optionErrorf("unexpected arguments: %s", strings.Join(args, " "))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opt)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opt.seqfile, "seqfile", "s", "", "FASTA file to digest ('-' for stdin, gzip accepted)")
	f.StringVarP(&opt.enzymes, "enzyme", "e", "", "comma-separated enzymes to survey (default: whole catalog)")
	f.BoolVarP(&opt.list, "list-enzymes", "l", false, "print list of enzymes and exit")
	f.BoolVarP(&opt.count, "count", "c", false, "count all restriction sites instead of fragments in the window")
	f.IntVarP(&opt.minLen, "min-length", "m", 200, "minimum length between restriction sites (exclusive)")
	f.IntVarP(&opt.maxLen, "max-length", "x", 600, "maximum length between restriction sites (exclusive)")
	f.BoolVarP(&opt.verbose, "verbose", "v", false, "print the tag count of every record")
	f.IntVarP(&opt.threads, "threads", "t", runtime.NumCPU(), "number of enzyme workers")
	f.StringVar(&opt.jsonPath, "json", "", "optional: write run summary JSON here")
	f.StringVar(&opt.gffPath, "gff", "", "optional: write counted fragments as GFF3 (path or '-' for stdout)")
	f.BoolVar(&opt.midsite, "midsite-fallback", false, "cut sites with no known cut position at mid-site instead of skipping the enzyme")
	f.IntVar(&opt.simLen, "sim-len", 0, "digest a simulated genome with records of this length instead of --seqfile")
	f.Float64Var(&opt.simGC, "sim-gc", 0.5, "GC fraction of the simulated genome")
	f.Int64Var(&opt.simSeed, "sim-seed", 0, "seed for the simulated genome (0 = time based)")
	f.IntVar(&opt.simRecords, "sim-records", 1, "number of simulated records")
	f.BoolVar(&opt.showVer, "version", false, "print version and exit")
	f.SortFlags = false

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &optionError{msg: err.Error()}
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func run(ctx context.Context, stdout, stderr io.Writer, opt options) error {
	if opt.showVer {
		fmt.Fprintf(stdout, "radselect %s (commit %s, %s)\n", version, commit, date)
		return nil
	}
	if opt.list {
		fmt.Fprintln(stdout, "The following enzymes are supported")
		for _, n := range enzyme.DB.Names() {
			fmt.Fprintln(stdout, n)
		}
		return nil
	}

	// ---- validate everything before reading input ---------------------------
	ens, err := enzyme.DB.Resolve(splitNames(opt.enzymes))
	if err != nil {
		return &optionError{msg: err.Error()}
	}
	simulate := opt.simLen > 0
	switch {
	case opt.seqfile == "" && !simulate:
		return optionErrorf("seqfile is required")
	case opt.seqfile != "" && simulate:
		return optionErrorf("--seqfile and --sim-len are mutually exclusive")
	case simulate && opt.simRecords < 1:
		return optionErrorf("--sim-records must be at least 1 (got %d)", opt.simRecords)
	}
	if opt.threads < 1 {
		return optionErrorf("--threads must be at least 1 (got %d)", opt.threads)
	}
	scorer := score.Scorer{Mode: score.Windowed, Window: score.Window{Min: opt.minLen, Max: opt.maxLen}}
	if opt.count {
		scorer.Mode = score.SiteCount
	}
	if err := scorer.Validate(); err != nil {
		return &optionError{msg: err.Error()}
	}

	// ---- load all records up front ------------------------------------------
	var recs []fasta.Record
	if simulate {
		recs = sim.Genome(opt.simRecords, opt.simLen, opt.simGC, opt.simSeed)
	} else if recs, err = fasta.Load(ctx, opt.seqfile); err != nil {
		return err
	}

	// ---- digest, score, collect ---------------------------------------------
	out := stdout
	copts := collector.Options{Verbose: opt.verbose}
	var gffFile *os.File
	switch opt.gffPath {
	case "":
	case "-":
		copts.GFF = stdout
		out = stderr // keep stdout pure GFF
	default:
		if gffFile, err = os.Create(opt.gffPath); err != nil {
			return fmt.Errorf("gff: %w", err)
		}
		copts.GFF = gffFile
	}
	copts.Out = out

	cfg := survey.Config{
		Scorer:        scorer,
		Threads:       opt.threads,
		Options:       digest.Options{MidsiteFallback: opt.midsite},
		KeepFragments: opt.gffPath != "",
	}
	res, err := survey.Survey(ctx, cfg, ens, recs, copts)
	if gffFile != nil {
		if cerr := gffFile.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gff: %w", cerr)
		}
	}
	if err != nil {
		return err
	}

	entries := rank.Rank(res.Tallies)
	if len(entries) == 0 {
		warnf(stderr, "none of the %d selected enzymes could be used", len(ens))
	}
	if err := report.WriteRanking(out, entries); err != nil {
		return err
	}
	if opt.jsonPath != "" {
		if err := report.WriteJSON(opt.jsonPath, report.NewSummary(scorer, len(recs), res)); err != nil {
			return err
		}
	}
	return nil
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	logger := log.New(stderr, "radselect: ", 0)
	var oe *optionError
	switch {
	case errors.As(err, &oe):
		fmt.Fprintf(stderr, "ERROR: %s\n", oe.msg)
		fmt.Fprint(stderr, cmd.UsageString())
	case errors.Is(err, context.Canceled):
		logger.Print("interrupted, no results written")
	default:
		logger.Print(err)
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
