package frame

import "github.com/Regentag/iridium-go/internal/bitutil"

// buildBytePayloads turns a 312-bit LCW payload body into the three
// representations VO/IP decoding share, spec.md §4.3: forward bytes,
// bit-reversed-per-byte bytes, and 6-bit symbol groups.
func buildBytePayloads(body bitutil.Bits) (forward, reversed, groups6 []byte) {
	bytes := bitutil.ChunkExact(body, 8)
	forward = make([]byte, len(bytes))
	reversed = make([]byte, len(bytes))
	for i, b := range bytes {
		v := byte(bitutil.Uint(b))
		forward[i] = v
		reversed[i] = bitutil.ReverseByte(v)
	}

	sixes := bitutil.ChunkExact(body, 6)
	groups6 = make([]byte, len(sixes))
	for i, g := range sixes {
		groups6[i] = byte(bitutil.Uint(g))
	}
	return forward, reversed, groups6
}

// bytesFromBits packs a slice of (assumed 8-bit) bit-string groups into
// bytes.
func bytesFromBits(groups []bitutil.Bits) []byte {
	out := make([]byte, len(groups))
	for i, g := range groups {
		out[i] = byte(bitutil.Uint(g))
	}
	return out
}

// checksum16Words builds the 16-bit word stream an RS-recovered message
// feeds to codec.Checksum16: msg[0:-3] ‖ msg[-2:], i.e. only the
// third-from-last byte (kept aside elsewhere as the "oddbyte") is dropped
// before pairing the rest big-endian. Returns nil if msg is too short to
// have a distinct oddbyte.
func checksum16Words(msg []byte) []uint16 {
	if len(msg) < 3 {
		return nil
	}
	stream := make([]byte, 0, len(msg)-1)
	stream = append(stream, msg[:len(msg)-3]...)
	stream = append(stream, msg[len(msg)-2:]...)

	words := make([]uint16, 0, len(stream)/2)
	for i := 0; i+1 < len(stream); i += 2 {
		words = append(words, uint16(stream[i])<<8|uint16(stream[i+1]))
	}
	return words
}
