package gff

import (
	"fmt"
	"io"

	"radselect/internal/digest"
)

const header = "##gff-version 3\n"

const source = "radselect"

func WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, header)
	return err
}

// WriteFragments writes one row per fragment of chr cut by enzyme.
// Coordinates are converted to *1-based closed* as GFF expects; zero-length
// fragments are skipped since GFF cannot express them.
func WriteFragments(w io.Writer, enzyme, chr string, frags []digest.Fragment) error {
	for i, f := range frags {
		if f.Len() == 0 {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			"%s\t%s\tfragment\t%d\t%d\t.\t+\t.\tID=%s_%s_%d;enzyme=%s;length=%d\n",
			chr, source, f.Start+1, f.End, enzyme, chr, i+1, enzyme, f.Len(),
		); err != nil {
			return err
		}
	}
	return nil
}
