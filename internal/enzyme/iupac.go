// internal/enzyme/iupac.go
package enzyme

import "fmt"

// 4‑bit mask per base
var codeMap = map[byte]uint8{
	'A': 1 << 0,
	'C': 1 << 1,
	'G': 1 << 2,
	'T': 1 << 3,
	'R': (1 << 0) | (1 << 2),
	'Y': (1 << 1) | (1 << 3),
	'S': (1 << 1) | (1 << 2),
	'W': (1 << 0) | (1 << 3),
	'K': (1 << 2) | (1 << 3),
	'M': (1 << 0) | (1 << 1),
	'B': (1 << 1) | (1 << 2) | (1 << 3),
	'D': (1 << 0) | (1 << 2) | (1 << 3),
	'H': (1 << 0) | (1 << 1) | (1 << 3),
	'V': (1 << 0) | (1 << 1) | (1 << 2),
	'N': (1 << 0) | (1 << 1) | (1 << 2) | (1 << 3),
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// CompileMask converts an IUPAC site to per-position bit-masks.
func CompileMask(site string) ([]uint8, error) {
	out := make([]uint8, len(site))
	for i := 0; i < len(site); i++ {
		m, ok := codeMap[upper(site[i])]
		if !ok {
			return nil, fmt.Errorf("%w: base %q in %q", ErrInvalidSite, site[i], site)
		}
		out[i] = m
	}
	return out, nil
}

// baseMaskWin maps a reference base to its mask for matching.
// 'N' and any other ambiguity code in the reference never match a site.
func baseMaskWin(b byte) uint8 {
	switch upper(b) {
	case 'A':
		return 1 << 0
	case 'C':
		return 1 << 1
	case 'G':
		return 1 << 2
	case 'T':
		return 1 << 3
	}
	return 0
}

// MatchMask returns true iff window matches the compiled mask.
// window must be at least len(mask) long.
func MatchMask(mask []uint8, window []byte) bool {
	n := len(mask)
	if n == 0 || len(window) < n {
		return false
	}
	// fast reject on last position
	if baseMaskWin(window[n-1])&mask[n-1] == 0 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if baseMaskWin(window[i])&mask[i] == 0 {
			return false
		}
	}
	return true
}

// complementMask swaps A<->T and C<->G bits.
func complementMask(m uint8) uint8 {
	var out uint8
	if m&(1<<0) != 0 {
		out |= 1 << 3
	}
	if m&(1<<3) != 0 {
		out |= 1 << 0
	}
	if m&(1<<1) != 0 {
		out |= 1 << 2
	}
	if m&(1<<2) != 0 {
		out |= 1 << 1
	}
	return out
}

// RevCompMask returns the mask of the reverse-complement site.
func RevCompMask(mask []uint8) []uint8 {
	n := len(mask)
	out := make([]uint8, n)
	for i, m := range mask {
		out[n-1-i] = complementMask(m)
	}
	return out
}

// IsPalindrome reports whether the site reads the same on both strands.
func IsPalindrome(mask []uint8) bool {
	n := len(mask)
	for i := 0; i < n; i++ {
		if mask[i] != complementMask(mask[n-1-i]) {
			return false
		}
	}
	return true
}
