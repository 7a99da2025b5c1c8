package frame

import "github.com/Regentag/iridium-go/internal/bitutil"

const syncByte = 0xAA

// SYFields is the synchronisation (SY) variant, spec.md §3/§4.3: 39 bytes
// that should all equal 0xAA.
type SYFields struct {
	Sync     []byte
	Mismatch int // count of bytes that aren't 0xAA
}

func decodeSY(f *ClassifiedFrame, body bitutil.Bits) {
	groups := bitutil.ChunkExact(body, 8)
	sy := &SYFields{Sync: bytesFromBits(groups)}
	for _, b := range sy.Sync {
		if b != syncByte {
			sy.Mismatch++
		}
	}
	f.SY = sy
	f.Tag = TagSY
}
