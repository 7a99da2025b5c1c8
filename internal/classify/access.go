package classify

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/decodeerr"
)

// Direction is the link direction an access code resolves to.
type Direction string

const (
	Downlink Direction = "downlink"
	Uplink   Direction = "uplink"
)

const (
	downlinkAccess = "001100000011000011110011"
	uplinkAccess   = "110011000011110011111100"
)

// symbolMap converts a 2-bit dibit to its BPSK symbol value, per spec.md
// §4.1's table {00→0, 01→1, 10→3, 11→2}.
func symbolMap(b0, b1 byte) int {
	switch {
	case b0 == '0' && b1 == '0':
		return 0
	case b0 == '0' && b1 == '1':
		return 1
	case b0 == '1' && b1 == '0':
		return 3
	default:
		return 2
	}
}

func toSymbols(bits bitutil.Bits) []int {
	out := make([]int, 0, len(bits)/2)
	for i := 0; i+1 < len(bits); i += 2 {
		out = append(out, symbolMap(bits[i], bits[i+1]))
	}
	return out
}

// differentialDecode performs s_i <- (s_{i-1}+s_i) mod 4 in place over
// indices [1, len-2] only (iridium-parser.py:266-267's
// `for c in range(1, len(access)-1)`), leaving the first and last symbols
// raw.
func differentialDecode(symbols []int) []int {
	out := append([]int(nil), symbols...)
	for i := 1; i < len(out)-1; i++ {
		out[i] = (out[i-1] + symbols[i]) % 4
	}
	return out
}

var (
	downlinkCanonical = []int{0, 2, 2, 2, 2, 0, 0, 0, 2, 0, 0, 2}
	uplinkCanonical   = []int{2, 2, 0, 0, 0, 2, 0, 0, 2, 0, 2, 2}
)

// DetectDirection strips and classifies the 24-bit access code from the
// front of symbols (spec.md §4.1). When correctUW is false, only an exact
// prefix match is accepted. When true, a Hamming-distance comparison
// against the differentially-decoded canonical symbol sequences is also
// tried, and ecUW reports the corrected symbol count for the winning
// direction.
func DetectDirection(symbols bitutil.Bits, correctUW bool) (dir Direction, payload bitutil.Bits, ecUW int, err error) {
	if len(symbols) < 24 {
		return "", "", 0, decodeerr.New("classify", decodeerr.AccessCodeMissing, "fewer than 24 bits available")
	}

	prefix := symbols[:24]
	switch {
	case prefix == downlinkAccess:
		return Downlink, symbols[24:], 0, nil
	case prefix == uplinkAccess:
		return Uplink, symbols[24:], 0, nil
	}

	if !correctUW {
		return "", "", 0, decodeerr.New("classify", decodeerr.AccessCodeMissing, "no exact access code match")
	}

	decoded := differentialDecode(toSymbols(prefix))
	dDown := bitutil.HammingDistance(decoded, downlinkCanonical)
	dUp := bitutil.HammingDistance(decoded, uplinkCanonical)

	switch {
	case dDown < 4 && dDown <= dUp:
		return Downlink, symbols[24:], dDown, nil
	case dUp < 4:
		return Uplink, symbols[24:], dUp, nil
	}

	return "", "", 0, decodeerr.New("classify", decodeerr.AccessCodeDist, "hamming distance >= 4 from both canonical sequences")
}
