// Package report prints the enzyme ranking and the optional JSON summary.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"radselect/internal/collector"
	"radselect/internal/rank"
	"radselect/internal/score"
)

// WriteRanking prints entries least to most qualifying, one per line.
func WriteRanking(w io.Writer, entries []rank.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "(%d, %s)\n", e.Total, e.Enzyme)
	}
	return bw.Flush()
}

type Summary struct {
	Mode      string                    `json:"mode"`
	MinLength int                       `json:"min_length"`
	MaxLength int                       `json:"max_length"`
	Records   int                       `json:"records"`
	Enzymes   int                       `json:"enzymes"`
	Skipped   []string                  `json:"skipped"`
	Ranking   []rank.Entry              `json:"ranking"`
	Best      *rank.Entry               `json:"best,omitempty"`
	PerRecord map[string]map[string]int `json:"per_record"` // enzyme → record → count
}

func NewSummary(s score.Scorer, records int, res collector.Result) Summary {
	sum := Summary{
		Mode:      s.Mode.String(),
		MinLength: s.Window.Min,
		MaxLength: s.Window.Max,
		Records:   records,
		Enzymes:   len(res.Tallies) + len(res.Skipped),
		Skipped:   append([]string{}, res.Skipped...),
		Ranking:   rank.Rank(res.Tallies),
		PerRecord: make(map[string]map[string]int, len(res.Tallies)),
	}
	if best, ok := rank.Best(sum.Ranking); ok {
		sum.Best = &best
	}
	for name, t := range res.Tallies {
		counts := make(map[string]int, len(t.Counts))
		for id, n := range t.Counts {
			counts[id] = n
		}
		sum.PerRecord[name] = counts
	}
	return sum
}

func WriteJSON(path string, s Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("encode json: %w", err)
	}
	return f.Close()
}
