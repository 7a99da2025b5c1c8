package codec

// Reed-Solomon fix over GF(2^8) and GF(2^6), per spec.md §4.4/§6:
// "rs_fix_8(symbols)" / "rs_fix_6(symbols)" → (ok, message, checksum).
//
// The pack carries no ecosystem RS library (DESIGN.md pack survey); the
// nearest analogues (ysf2dmr's BPTC, dmr-nexus's link-control parity) are
// hand-rolled fixed-length parity checks rather than general RS decoders,
// so this hand-rolls a real syndrome/Berlekamp-Massey/Chien-search/Forney
// decoder (galois.go) instead of approximating one. The two field/parity
// combinations below are fixed properties of each code, not caller
// choices — see DESIGN.md for how the message/parity split was derived.

var (
	gf256 = newGFField(8, 0x11d)
	gf64  = newGFField(6, 0x43)
)

// rs8ParityLen is grounded on original_source/iridium-parser.py's
// checksum_16(rs8m[0:-3], rs8m[-2:]) call, unpacked as "15H" (15 16-bit
// words = 30 bytes): (len(rs8m)-3)+2 = 30 ⟹ len(rs8m) = 31, and the
// 39-byte payload8 codeword then implies an 8-byte parity (t=4).
const rs8ParityLen = 8

// rs6ParityLen has no equivalent checksum_16 call to derive it from (the
// RS6/I36 path in the original never builds a checksum over rs6m), so
// this mirrors rs8ParityLen's parity-symbol count applied to the 52-symbol
// GF(2^6) codeword (message length 44, t=4); see DESIGN.md.
const rs6ParityLen = 8

// RSFix8 operates on GF(2^8) symbols (bytes), a 39-symbol codeword split
// 31 message / 8 parity.
func RSFix8(symbols []byte) (ok bool, message, checksum []byte) {
	return rsFix(gf256, symbols, rs8ParityLen)
}

// RSFix6 operates on GF(2^6) symbols (each 0..63) packed one per byte, a
// 52-symbol codeword split 44 message / 8 parity.
func RSFix6(symbols []byte) (ok bool, message, checksum []byte) {
	return rsFix(gf64, symbols, rs6ParityLen)
}

// rsFix decodes symbols (transmission order: message symbols first,
// parity symbols last) against f's RS(len(symbols), len(symbols)-parityLen)
// code. The decoder's syndrome/Berlekamp-Massey machinery treats array
// index as polynomial degree (index 0 = x^0), so symbols is reversed on
// the way in and out: the last-transmitted (parity) symbol becomes the
// lowest-degree coefficient and the first-transmitted (message) symbol
// the highest, the conventional systematic-code placement bch.go's
// "data high order, check bits low order" Divide/Repair also uses.
func rsFix(f *gfField, symbols []byte, parityLen int) (bool, []byte, []byte) {
	n := len(symbols)
	if parityLen <= 0 || parityLen >= n {
		return false, nil, nil
	}

	received := make([]int, n)
	for i, s := range symbols {
		received[n-1-i] = int(s)
	}

	ok, corrected := f.rsDecode(received, parityLen)
	if !ok {
		return false, nil, nil
	}

	out := make([]byte, n)
	for i, v := range corrected {
		out[n-1-i] = byte(v)
	}
	msgLen := n - parityLen
	return true, out[:msgLen], out[msgLen:]
}
