// internal/enzyme/enzyme.go
//go:generate go run ./cmd/gen -in enzymes.json -out enzymes_generated.go
package enzyme

import (
	"fmt"
	"sort"
	"strings"
)

// Enzyme is one catalog entry. Recognition uses REBASE notation:
// "G^AATTC", "GGTCTC(1/5)" or "(10/15)ACNNNNGTAYC(12/7)".
type Enzyme struct {
	Name        string
	Recognition string
}

// Catalog maps enzyme names to entries. It is read-only once built.
type Catalog map[string]Enzyme

// NewCatalog indexes entries by name; later duplicates win.
func NewCatalog(entries []Enzyme) Catalog {
	c := make(Catalog, len(entries))
	for _, e := range entries {
		c[e.Name] = e
	}
	return c
}

func (c Catalog) Get(name string) (Enzyme, bool) {
	e, ok := c[name]
	return e, ok
}

// Names returns every enzyme name in lexical order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up each name (surrounding spaces are forgiven). An empty
// list resolves to the whole catalog in name order.
func (c Catalog) Resolve(names []string) ([]Enzyme, error) {
	if len(names) == 0 {
		names = c.Names()
	}
	out := make([]Enzyme, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		n := strings.TrimSpace(raw)
		e, ok := c[n]
		if !ok {
			return nil, fmt.Errorf("%s is an invalid enzyme name", raw)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, e)
	}
	return out, nil
}
