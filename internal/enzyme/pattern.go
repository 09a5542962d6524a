package enzyme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnsupported marks catalog entries whose cut cannot be modelled as a
	// single top-strand position (no cut given, or cuts on both sides).
	ErrUnsupported = errors.New("unsupported cut")
	ErrInvalidSite = errors.New("invalid recognition site")
)

// Site is a parsed recognition site. Cut and BottomCut are the offsets, from
// the first base of Motif, at which the motif strand and its complement are
// cut. Either may lie outside the motif for type IIS enzymes.
type Site struct {
	Motif     string
	Cut       int
	BottomCut int
}

// StripCaret removes “^” from the recognition site and returns
// (cleanSite, cutOffset, found).
func StripCaret(recog string) (string, int, bool) {
	for i := 0; i < len(recog); i++ {
		if recog[i] == '^' {
			return recog[:i] + recog[i+1:], i, true
		}
	}
	return recog, 0, false
}

// ParseSite decodes REBASE notation. Sites with no cut information are
// unsupported unless midsite is set, in which case they cut at len/2.
func ParseSite(recog string, midsite bool) (Site, error) {
	s := strings.TrimSpace(recog)
	if s == "" {
		return Site{}, fmt.Errorf("%w: empty", ErrInvalidSite)
	}
	if s[0] == '(' {
		return Site{}, fmt.Errorf("%w: %s cuts on both sides of the site", ErrUnsupported, s)
	}

	var site Site
	switch motif, cut, ok := StripCaret(s); {
	case ok:
		site = Site{Motif: motif, Cut: cut, BottomCut: len(motif) - cut}
	case s[len(s)-1] == ')':
		open := strings.LastIndexByte(s, '(')
		if open <= 0 {
			return Site{}, fmt.Errorf("%w: %s", ErrInvalidSite, s)
		}
		parts := strings.Split(s[open+1:len(s)-1], "/")
		if len(parts) != 2 {
			return Site{}, fmt.Errorf("%w: %s", ErrInvalidSite, s)
		}
		if parts[0] == "?" || parts[1] == "?" {
			return Site{}, fmt.Errorf("%w: %s has an unknown cut", ErrUnsupported, s)
		}
		top, err := strconv.Atoi(parts[0])
		if err != nil {
			return Site{}, fmt.Errorf("%w: %s: %v", ErrInvalidSite, s, err)
		}
		bottom, err := strconv.Atoi(parts[1])
		if err != nil {
			return Site{}, fmt.Errorf("%w: %s: %v", ErrInvalidSite, s, err)
		}
		site = Site{Motif: s[:open], Cut: open + top, BottomCut: open + bottom}
	case midsite:
		site = Site{Motif: s, Cut: len(s) / 2, BottomCut: len(s) - len(s)/2}
	default:
		return Site{}, fmt.Errorf("%w: %s has no cut position", ErrUnsupported, s)
	}

	if site.Motif == "" {
		return Site{}, fmt.Errorf("%w: %s", ErrInvalidSite, s)
	}
	for i := 0; i < len(site.Motif); i++ {
		if _, ok := codeMap[upper(site.Motif[i])]; !ok {
			return Site{}, fmt.Errorf("%w: base %q in %q", ErrInvalidSite, site.Motif[i], s)
		}
	}
	return site, nil
}
