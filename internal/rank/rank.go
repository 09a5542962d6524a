// Package rank holds per-enzyme tallies and orders enzymes by total count.
package rank

import "sort"

// Tally is one enzyme's per-record counts. Total always equals the sum of
// Counts; records sharing an ID accumulate into one entry.
type Tally struct {
	Enzyme string
	Site   string
	Counts map[string]int
	Total  int

	order []string
}

func NewTally(enzyme, site string) *Tally {
	return &Tally{Enzyme: enzyme, Site: site, Counts: make(map[string]int)}
}

func (t *Tally) Add(id string, n int) {
	if _, ok := t.Counts[id]; !ok {
		t.order = append(t.order, id)
	}
	t.Counts[id] += n
	t.Total += n
}

func (t *Tally) Count(id string) int { return t.Counts[id] }

// Records returns record IDs in first-seen order.
func (t *Tally) Records() []string {
	return append([]string(nil), t.order...)
}

// Entry is one line of the final ranking.
type Entry struct {
	Total  int    `json:"total"`
	Enzyme string `json:"enzyme"`
}

// Rank orders enzymes ascending by total, ties by name, so the best
// enzyme comes last.
func Rank(tallies map[string]*Tally) []Entry {
	out := make([]Entry, 0, len(tallies))
	for name, t := range tallies {
		if t == nil {
			continue
		}
		out = append(out, Entry{Total: t.Total, Enzyme: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total < out[j].Total
		}
		return out[i].Enzyme < out[j].Enzyme
	})
	return out
}

// Best returns the highest-ranked entry.
func Best(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[len(entries)-1], true
}
