package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	mmap "github.com/edsrzf/mmap-go"
)

const bufSize = 4 << 20 // 4 MiB

// Record is one FASTA entry (whole chromosome or contig).
type Record struct {
	ID  string
	Seq []byte // upper-case, no whitespace; owned by the record
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// Open returns the raw bytes of path; "-" reads stdin. Regular files are
// memory-mapped when the platform allows it.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() || fi.Size() == 0 {
		return f, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return f, nil
	}
	return readCloser{
		Reader: bytes.NewReader(m),
		close: func() error {
			uerr := m.Unmap()
			if cerr := f.Close(); uerr == nil {
				uerr = cerr
			}
			return uerr
		},
	}, nil
}

// OpenDecoded is Open plus transparent gunzip (detected by magic bytes).
func OpenDecoded(path string) (io.ReadCloser, error) {
	raw, err := Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(raw, bufSize)
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			raw.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return readCloser{Reader: zr, close: func() error {
			zr.Close()
			return raw.Close()
		}}, nil
	}
	return readCloser{Reader: br, close: raw.Close}, nil
}

func letters(ls alphabet.Letters) []byte {
	out := make([]byte, 0, len(ls))
	for _, l := range ls {
		c := byte(l)
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return out
}

// Scan parses FASTA from r and calls fn for each record in file order.
// It stops at the first error from the parser or from fn.
func Scan(r io.Reader, fn func(Record) error) error {
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		id := ""
		if f := strings.Fields(s.Name()); len(f) > 0 {
			id = f[0] // grab up-to-first-space
		}
		if err := fn(Record{ID: id, Seq: letters(s.Seq)}); err != nil {
			return err
		}
	}
	return sc.Error()
}

// Load reads every record of path up front.
func Load(ctx context.Context, path string) ([]Record, error) {
	rc, err := OpenDecoded(path)
	if err != nil {
		return nil, fmt.Errorf("read FASTA %s: %w", path, err)
	}
	defer rc.Close()

	var recs []Record
	err = Scan(rc, func(rec Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read FASTA %s: %w", path, err)
	}
	return recs, nil
}
