// Package interleave implements the three bit-exact de-interleavers spec.md
// §4.5 defines: two-way, three-way, and the fixed 46-bit link-control-word
// permutation.
package interleave

import "github.com/Regentag/iridium-go/internal/bitutil"

// symbols splits a bit string into high-bit-second symbol pairs, per
// spec.md §4.5: symbols[k] = bits[2k+1] ‖ bits[2k].
func symbols(bits bitutil.Bits) []bitutil.Bits {
	n := len(bits) / 2
	out := make([]bitutil.Bits, n)
	for k := 0; k < n; k++ {
		out[k] = string([]byte{bits[2*k+1], bits[2*k]})
	}
	return out
}

// TwoWay de-interleaves a symbol-pair group into (odd, even), per spec.md
// §4.5: odd = symbols[n-1], symbols[n-3], ...; even = symbols[n-2],
// symbols[n-4], ..., each concatenated.
func TwoWay(group bitutil.Bits) (odd, even bitutil.Bits) {
	s := symbols(group)
	n := len(s)
	for i := n - 1; i >= 0; i -= 2 {
		odd += s[i]
	}
	for i := n - 2; i >= 0; i -= 2 {
		even += s[i]
	}
	return odd, even
}

// ThreeWay de-interleaves a symbol-pair group into (first, second, third),
// stepping -3 from positions n-1, n-2, n-3 respectively.
func ThreeWay(group bitutil.Bits) (first, second, third bitutil.Bits) {
	s := symbols(group)
	n := len(s)
	for i := n - 1; i >= 0; i -= 3 {
		first += s[i]
	}
	for i := n - 2; i >= 0; i -= 3 {
		second += s[i]
	}
	for i := n - 3; i >= 0; i -= 3 {
		third += s[i]
	}
	return first, second, third
}

// lcwPermutation is the fixed 1-based bit-pick table for the 46-bit link
// control word (spec.md §4.5).
var lcwPermutation = [46]int{
	40, 39, 36, 35, 32, 31, 28, 27, 24, 23, 20, 19, 16, 15, 12, 11, 8, 7, 4, 3,
	41,
	38, 37, 34, 33, 30, 29, 26, 25, 22, 21, 18, 17, 14, 13, 10, 9, 6, 5, 2, 1,
	46, 45, 44, 43, 42,
}

// LCW applies the 46-bit link-control-word permutation to bits (which must
// be at least 46 bits long) and splits the picked bits into three raw
// words of 7, 13 and 26 bits (the permutation table has 46 entries and the
// reference implementation slices it 7/13/26, not the 7/13/21 a literal
// reading of spec.md's prose would suggest; §4.3's BCH repair then yields
// lcw1/lcw3 at their 3/21-bit data widths, and frame.decodeLW pads the
// 14-bit corrected lcw2 word to 16 bits).
func LCW(bits bitutil.Bits) (word1, word2, word3 bitutil.Bits) {
	picked := make([]byte, len(lcwPermutation))
	for i, idx := range lcwPermutation {
		picked[i] = bits[idx-1]
	}
	return string(picked[:7]), string(picked[7:20]), string(picked[20:])
}
