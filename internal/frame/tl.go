package frame

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/decodeerr"
)

// TLFields is the short-timing-location (TL) variant: three raw 256-bit
// fields, spec.md §3. The format carries no further documented structure
// within those fields, so they are kept as bit strings rather than parsed
// further (spec.md Design Notes: prefer typed reads, but an undocumented
// field stays opaque).
type TLFields struct {
	Field1 bitutil.Bits
	Field2 bitutil.Bits
	Field3 bitutil.Bits
}

func decodeTL(f *ClassifiedFrame, payload bitutil.Bits) {
	f.HeaderBits = payload[:96]
	body := payload[96:]

	const fieldLen = 256
	if len(body) < 3*fieldLen {
		f.AddError(decodeerr.New("frame.tl", decodeerr.NotEnoughData, "fewer than 3x256 bits available"))
	}

	tl := &TLFields{}
	rest := body
	for i, dst := range []*bitutil.Bits{&tl.Field1, &tl.Field2, &tl.Field3} {
		if len(rest) < fieldLen {
			break
		}
		*dst = rest[:fieldLen]
		rest = rest[fieldLen:]
		_ = i
	}
	f.DescrambledBlocks = []string{tl.Field1, tl.Field2, tl.Field3}
	f.DescrambleExtra = rest
	f.TL = tl
	f.Tag = TagTL
}
