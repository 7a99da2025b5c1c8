package frame

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
)

// U3Fields is the inband-signalling (U3) variant, spec.md §3/§4.3: the
// 312-bit LCW payload split into 8-bit and 6-bit groupings, RS-decoded
// preferring the 8-bit symbol code and falling back to the 6-bit one.
type U3Fields struct {
	Payload6 []byte
	Payload8 []byte

	RS8Ok      bool
	RS6Ok      bool
	RSMessage  []byte
	Checksum16 uint16
}

func decodeU3(f *ClassifiedFrame, body bitutil.Bits) {
	forward8, _, groups6 := buildBytePayloads(body)
	u3 := &U3Fields{Payload8: forward8, Payload6: groups6}

	if ok, msg, _ := codec.RSFix8(forward8); ok {
		u3.RS8Ok = true
		u3.RSMessage = msg
		if words := checksum16Words(msg); words != nil {
			u3.Checksum16 = codec.Checksum16(words)
		}
		f.U3 = u3
		f.Tag = TagI38
		return
	}

	if ok, msg, _ := codec.RSFix6(groups6); ok {
		u3.RS6Ok = true
		u3.RSMessage = msg
		f.U3 = u3
		f.Tag = TagI36
		return
	}

	f.U3 = u3
	f.Tag = TagU3
}

// U6Fields is the "PT=," (U6) variant, spec.md §3/§4.3: 312 payload bits
// carried verbatim, no further structure documented.
type U6Fields struct {
	Raw bitutil.Bits
}

func decodeU6(f *ClassifiedFrame, body bitutil.Bits) {
	raw := body
	if len(raw) > 312 {
		raw = raw[:312]
	}
	f.U6 = &U6Fields{Raw: raw}
	f.Tag = TagU6
}

// UxFields covers any frame_type spec.md §4.3's dispatch table doesn't
// name explicitly: the 312 payload bits carried verbatim, tagged with
// their numeric frame_type.
type UxFields struct {
	FrameType int
	Raw       bitutil.Bits
}

func decodeUx(f *ClassifiedFrame, body bitutil.Bits, frameType int) {
	raw := body
	if len(raw) > 312 {
		raw = raw[:312]
	}
	f.Ux = &UxFields{FrameType: frameType, Raw: raw}
	f.Tag = TagUx
}
