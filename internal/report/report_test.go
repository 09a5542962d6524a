package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radselect/internal/collector"
	"radselect/internal/rank"
	"radselect/internal/score"
)

func result() collector.Result {
	x := rank.NewTally("X", "G^AATTC")
	x.Add("chr1", 5)
	y := rank.NewTally("Y", "T^TAA")
	y.Add("chr1", 1)
	y.Add("chr2", 2)
	z := rank.NewTally("Z", "^GATC")
	z.Add("chr1", 5)
	return collector.Result{
		Tallies: map[string]*rank.Tally{"X": x, "Y": y, "Z": z},
		Skipped: []string{"BaeI"},
	}
}

func TestWriteRanking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, rank.Rank(result().Tallies)))
	assert.Equal(t, "(3, Y)\n(5, X)\n(5, Z)\n", buf.String())
}

func TestSummaryJSON(t *testing.T) {
	s := NewSummary(score.Scorer{Mode: score.Windowed, Window: score.Window{Min: 200, Max: 600}}, 2, result())
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, WriteJSON(path, s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc struct {
		Mode      string                    `json:"mode"`
		Min       int                       `json:"min_length"`
		Max       int                       `json:"max_length"`
		Enzymes   int                       `json:"enzymes"`
		Skipped   []string                  `json:"skipped"`
		Ranking   []rank.Entry              `json:"ranking"`
		Best      rank.Entry                `json:"best"`
		PerRecord map[string]map[string]int `json:"per_record"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "windowed", doc.Mode)
	assert.Equal(t, 200, doc.Min)
	assert.Equal(t, 600, doc.Max)
	assert.Equal(t, 4, doc.Enzymes)
	assert.Equal(t, []string{"BaeI"}, doc.Skipped)
	require.Len(t, doc.Ranking, 3)
	assert.Equal(t, rank.Entry{Total: 5, Enzyme: "Z"}, doc.Best)
	assert.Equal(t, 2, doc.PerRecord["Y"]["chr2"])
}

func TestSummary_EmptyRun(t *testing.T) {
	s := NewSummary(score.Scorer{Mode: score.SiteCount}, 0, collector.Result{})
	assert.Nil(t, s.Best)
	assert.NotNil(t, s.Skipped)
	assert.Empty(t, s.Ranking)
	assert.Equal(t, "sites", s.Mode)
}
