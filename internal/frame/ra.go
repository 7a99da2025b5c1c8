package frame

import (
	"math"

	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/decodeerr"
)

const raHeaderLen = 64 // sum of the per-field widths spec.md §4.3 lists (7+6+1+3*12+7+1+1+5)
const raPageLen = 42

var raNoneSentinel = "111111111111111111111111111111111111111111"[:raPageLen]
const raFillSentinel = "101000100111001110111010101000100010111000"

// RAFields is the ring-alert (RA) variant, spec.md §3/§4.3.
type RAFields struct {
	SatID      int
	BeamID     int
	PosX       int64
	PosY       int64
	PosZ       int64
	Interval   int
	Timeslot   int
	EIP        int
	BCSubband  int
	Lat        float64
	Lon        float64
	Alt        float64
	Pages      []RAPage
	PageSane   bool
	Extra      bitutil.Bits
}

// RAPage is one 42-bit paging record.
type RAPage struct {
	Kind  string // "page", "NONE", "FILL"
	TMSI  uint64
	MSCID int
}

func decodeRA(f *ClassifiedFrame, payload bitutil.Bits) {
	const compName = "frame.ra"
	if len(payload) < raHeaderLen {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "fewer than the ring-alert header's bits available"))
		return
	}
	f.HeaderBits = payload[:raHeaderLen]
	h := payload

	ra := &RAFields{
		SatID:     int(bitutil.Uint(h[0:7])),
		BeamID:    int(bitutil.Uint(h[7:13])),
		PosX:      bitutil.Int(h[14:26]),
		PosY:      bitutil.Int(h[26:38]),
		PosZ:      bitutil.Int(h[38:50]),
		Interval:  int(bitutil.Uint(h[50:57])),
		Timeslot:  int(bitutil.Uint(h[57:58])),
		EIP:       int(bitutil.Uint(h[58:59])),
		BCSubband: int(bitutil.Uint(h[59:64])),
	}

	x, y, z := float64(ra.PosX), float64(ra.PosY), float64(ra.PosZ)
	ra.Lat = math.Atan2(z, math.Sqrt(x*x+y*y)) * 180 / math.Pi
	ra.Lon = math.Atan2(y, x) * 180 / math.Pi
	ra.Alt = math.Sqrt(x*x+y*y+z*z) * 4

	pages, extra := bitutil.Chunk(payload[raHeaderLen:], raPageLen)
	ra.Extra = extra
	f.DescrambleExtra = extra
	f.DescrambledBlocks = pages

	ra.PageSane = true
	sawNone := false
	for _, p := range pages {
		switch p {
		case raNoneSentinel:
			ra.Pages = append(ra.Pages, RAPage{Kind: "NONE"})
			sawNone = true
		case raFillSentinel:
			ra.Pages = append(ra.Pages, RAPage{Kind: "FILL"})
			if !sawNone {
				ra.PageSane = false
			}
		default:
			if sawNone {
				ra.PageSane = false
			}
			ra.Pages = append(ra.Pages, RAPage{
				Kind:  "page",
				TMSI:  bitutil.Uint(p[0:32]),
				MSCID: int(bitutil.Uint(p[34:39])),
			})
		}
	}

	f.RA = ra
	f.Tag = TagRA
}
