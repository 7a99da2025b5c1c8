// Package burst models the raw input record (spec.md §3 "Burst") and
// parses it from the line-oriented text grammar spec.md §6 defines. Line
// reading itself (the text source) is out of scope per spec.md §1; this
// package only turns one already-read line into a Burst.
package burst

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Regentag/iridium-go/internal/decodeerr"
)

// Burst is one demodulated line: symbol string plus its capture metadata.
type Burst struct {
	Swapped           bool    // RAW (swapped) vs RWA (not swapped)
	SourceName        string  // opaque provenance string (filename or similar)
	OffsetMs          int64   // in-file offset, non-negative
	CentreFrequencyHz int64
	ConfidencePct     int
	SignalLevel       float64
	Symbols           string // '0'/'1' string, even length
	ExtraTrailer      string // optional trailing token, "" if absent
	RawLine           string // the original line, kept for idempotence/error echo
}

// lineGrammar matches spec.md §6's input line grammar. Its bit-string
// group admits stray formatting characters ('[', ']', '<', '>', spaces);
// Parse strips them from the matched group afterwards via sanitizeSymbols.
var lineGrammar = regexp.MustCompile(
	`^(RAW|RWA):\s+(\S+)\s+(\d+)\s+(-?\d+)\s+A:([0-9a-fA-F]+)\s+[IL]:([0-9a-fA-F]+)\s+(\d+)%\s+([\-0-9.]+)\s+(\d+)\s+([01\[\]<>\s]+?)(?:\s+(\S+))?\s*$`,
)

// Parse turns one input line into a Burst. On grammar mismatch it returns
// a decodeerr.ParseError.
func Parse(line string) (*Burst, error) {
	m := lineGrammar.FindStringSubmatch(line)
	if m == nil {
		return nil, decodeerr.New("burst", decodeerr.ParseError, "line does not match input grammar")
	}

	offset, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return nil, decodeerr.New("burst", decodeerr.ParseError, "bad offset_ms")
	}
	freq, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return nil, decodeerr.New("burst", decodeerr.ParseError, "bad freq_hz")
	}
	confidence, err := strconv.Atoi(m[7])
	if err != nil {
		return nil, decodeerr.New("burst", decodeerr.ParseError, "bad confidence")
	}
	level, err := strconv.ParseFloat(m[8], 64)
	if err != nil {
		return nil, decodeerr.New("burst", decodeerr.ParseError, "bad signal level")
	}

	symbols := sanitizeSymbols(m[10])
	if len(symbols)%2 != 0 || !isBinary(symbols) {
		return nil, decodeerr.New("burst", decodeerr.ParseError, "symbol string is not an even-length binary string")
	}

	return &Burst{
		Swapped:           m[1] == "RAW",
		SourceName:        m[2],
		OffsetMs:          offset,
		CentreFrequencyHz: freq,
		ConfidencePct:     confidence,
		SignalLevel:       level,
		Symbols:           symbols,
		ExtraTrailer:      m[11],
		RawLine:           line,
	}, nil
}

// sanitizeSymbols strips the literal formatting characters the grammar
// permits inside the bit string: '[', ']', '<', '>' and whitespace.
func sanitizeSymbols(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '<', '>', ' ', '\t':
			return -1
		}
		return r
	}, s)
}

func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
