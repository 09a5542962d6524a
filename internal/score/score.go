// Package score turns per-record fragment lengths into a single count.
package score

import (
	"errors"
	"fmt"
)

type Mode int

const (
	// Windowed counts fragments strictly inside the size window.
	Windowed Mode = iota
	// SiteCount counts cut sites (fragments minus one) and ignores lengths.
	SiteCount
)

func (m Mode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case SiteCount:
		return "sites"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Window is an exclusive size range: Min < length < Max.
type Window struct {
	Min int
	Max int
}

func (w Window) Contains(length int) bool {
	return length > w.Min && length < w.Max
}

type Scorer struct {
	Mode   Mode
	Window Window
}

var ErrBadWindow = errors.New("invalid length window")

func (s Scorer) Validate() error {
	switch s.Mode {
	case SiteCount:
		return nil
	case Windowed:
		if s.Window.Min < 0 {
			return fmt.Errorf("%w: min length %d < 0", ErrBadWindow, s.Window.Min)
		}
		if s.Window.Max <= s.Window.Min {
			return fmt.Errorf("%w: max length %d <= min length %d", ErrBadWindow, s.Window.Max, s.Window.Min)
		}
		return nil
	}
	return fmt.Errorf("unknown scoring mode %v", s.Mode)
}

// Score returns the count for one record's fragment lengths.
func (s Scorer) Score(lengths []int) int {
	if s.Mode == SiteCount {
		return max(0, len(lengths)-1)
	}
	n := 0
	for _, l := range lengths {
		if s.Window.Contains(l) {
			n++
		}
	}
	return n
}
