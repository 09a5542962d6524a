// Command gen turns enzymes.json into the catalog table compiled into the
// enzyme package.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"text/template"
)

type entry struct {
	Name string `json:"name"`
	Site string `json:"site"`
}

var tmpl = template.Must(template.New("db").Parse(`// Code generated by cmd/gen from {{.Source}}; DO NOT EDIT.

package enzyme

var builtin = []Enzyme{
{{- range .Entries}}
	{Name: {{printf "%q" .Name}}, Recognition: {{printf "%q" .Site}}},
{{- end}}
}

// DB is the built-in catalog.
var DB = NewCatalog(builtin)
`))

func load(path string) ([]entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ens []entry
	if err := json.Unmarshal(raw, &ens); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	seen := make(map[string]bool, len(ens))
	for i, e := range ens {
		if e.Name == "" || e.Site == "" {
			return nil, fmt.Errorf("%s: entry %d: name and site are required", path, i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%s: duplicate enzyme %s", path, e.Name)
		}
		seen[e.Name] = true
	}
	sort.Slice(ens, func(i, j int) bool { return ens[i].Name < ens[j].Name })
	return ens, nil
}

func main() {
	in := flag.String("in", "enzymes.json", "enzyme table (JSON array of {name, site})")
	out := flag.String("out", "enzymes_generated.go", "generated Go file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gen: ")

	ens, err := load(*in)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Source  string
		Entries []entry
	}{*in, ens}); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
