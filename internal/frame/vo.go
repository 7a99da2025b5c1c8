package frame

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
)

// VOFields is the voice (VO) variant, spec.md §3/§4.3: the 312-bit LCW
// payload read three ways (forward bytes, bit-reversed bytes, 6-bit
// groups), since which reading is meaningful depends on a CRC/RS outcome
// only known after the fact.
type VOFields struct {
	PayloadF []byte // 39 bytes, forward bit order
	PayloadR []byte // 39 bytes, each byte bit-reversed
	Payload6 []byte // 52 six-bit groups, one value (0..63) per byte

	RSOk      bool
	RSMessage []byte
}

func decodeVO(f *ClassifiedFrame, body bitutil.Bits) {
	forward, reversed, groups6 := buildBytePayloads(body)
	vo := &VOFields{PayloadF: forward, PayloadR: reversed, Payload6: groups6}

	// A valid CRC-24 over the reversed bytes means this is really an IP
	// frame routed through the voice channel: re-dispatch into IP decoding
	// rather than treat it as a VO fallback (spec.md §9 Open Questions).
	if codec.CRC24IIP(reversed) == 0 {
		decodeIPCore(f, body, TagVDA)
		return
	}

	if ok, msg, _ := codec.RSFix6(groups6); ok {
		vo.RSOk = true
		vo.RSMessage = msg
		f.VO = vo
		f.Tag = TagVO6
		return
	}

	if ok, msg, _ := codec.RSFix8(forward); ok {
		vo.RSOk = true
		vo.RSMessage = msg
		f.VO = vo
		f.Tag = TagVOD
		return
	}

	f.VO = vo
	f.Tag = TagVOC
}
