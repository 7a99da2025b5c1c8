package frame

import (
	"strconv"

	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/Regentag/iridium-go/internal/interleave"
)

const (
	lcwPoly1 = 29
	lcwPoly2 = 465
	lcwPoly3 = 41
)

// LWFields is the link-control-word (LW) variant, spec.md §3/§4.3. Exactly
// one of the dispatch targets below (set on the embedding ClassifiedFrame)
// is populated once LW decoding completes.
type LWFields struct {
	LCW1      bitutil.Bits // 3 bits
	LCW2      bitutil.Bits // 16 bits: 2-bit pad ‖ 14-bit corrected poly-465 word
	LCW3      bitutil.Bits // 21 bits
	FrameType int          // lcw1 as an integer, 0..7

	LCWFt    int    // high 2 bits of lcw2
	LCWCode  int    // low 14 bits of lcw2
	CodeName string // human-readable subtype tag, "rsrvd(n)" for unmapped codes
}

func decodeLW(f *ClassifiedFrame, payload bitutil.Bits, harder bool) {
	const compName = "frame.lw"
	if len(payload) < 46 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "fewer than 46 header bits"))
		return
	}
	f.HeaderBits = payload[:46]

	w1, w2, w3 := interleave.LCW(payload[:46])

	e1, lcw1, _ := codec.Repair(lcwPoly1, w1)
	if e1 < 0 {
		f.AddError(decodeerr.New(compName, decodeerr.HeaderBCHFailure, "lcw1 BCH repair failed"))
		return
	}

	// The 465 code is tried with both a trailing 0 and trailing 1 appended
	// (one bit is deliberately elided from the permutation); fewer errors
	// wins, ties go to the '0' trial (spec.md §9 Open Questions).
	e2a, lcw2a, _ := codec.RepairWidth(lcwPoly2, w2+"0", len(w2)+1)
	e2b, lcw2b, _ := codec.RepairWidth(lcwPoly2, w2+"1", len(w2)+1)
	var e2 int
	var lcw2corrected bitutil.Bits
	switch {
	case e2a < 0 && e2b < 0:
		f.AddError(decodeerr.New(compName, decodeerr.HeaderBCHFailure, "lcw2 BCH repair failed"))
		return
	case e2a < 0:
		e2, lcw2corrected = e2b, lcw2b
	case e2b < 0:
		e2, lcw2corrected = e2a, lcw2a
	case e2a <= e2b:
		e2, lcw2corrected = e2a, lcw2a
	default:
		e2, lcw2corrected = e2b, lcw2b
	}

	e3, lcw3, _ := codec.Repair(lcwPoly3, w3)
	if e3 < 0 {
		f.AddError(decodeerr.New(compName, decodeerr.HeaderBCHFailure, "lcw3 BCH repair failed"))
		return
	}

	f.LCWRepairCount = e1 + e2 + e3
	f.FixedErrors += f.LCWRepairCount

	lcw2 := "00" + lcw2corrected // spec.md Data Model lists lcw2 as 16 bits: two zero pad bits ‖ 14-bit corrected word

	lw := &LWFields{
		LCW1:      lcw1,
		LCW2:      lcw2,
		LCW3:      lcw3,
		FrameType: int(bitutil.Uint(lcw1)),
	}
	lw.LCWFt = int(bitutil.Uint(lcw2[0:2]))
	lw.LCWCode = int(bitutil.Uint(lcw2[2:16]))
	lw.CodeName = lcwCodeName(lw.LCWFt, lw.LCWCode)

	f.LW = lw
	f.Tag = TagLW

	body := payload[46:]
	if lw.FrameType <= 3 && len(body) < 312 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "fewer than 312 payload bits"))
		return
	}

	switch lw.FrameType {
	case 0:
		decodeVO(f, body)
	case 1:
		decodeIPCore(f, body, TagIIP)
	case 2:
		decodeDA(f, body)
	case 3:
		decodeU3(f, body)
	case 6:
		decodeU6(f, body)
	case 7:
		decodeSY(f, body)
	default:
		decodeUx(f, body, lw.FrameType)
	}
}

// lcwCodeName renders the secondary subtype tag spec.md §4.3 describes:
// lcw_ft selects a family, lcw_code a specific subtype within it. Unmapped
// codes render "rsrvd(n)" without failing the decode.
func lcwCodeName(ft, code int) string {
	switch ft {
	case 0:
		switch code {
		case 0:
			return "sync"
		case 1:
			return "switch"
		case 3:
			return "maint[2]"
		case 6:
			return "geoloc"
		case 12:
			return "maint[1]"
		case 15:
			return "<silent>"
		}
	case 1:
		if code == 1 {
			return "acchl"
		}
	case 2:
		switch code {
		case 3:
			return "handoff_resp"
		case 12:
			return "handoff_cand"
		case 15:
			return "<silent>"
		}
	case 3:
		return "<" + strconv.Itoa(code) + ">"
	}
	return "rsrvd(" + strconv.Itoa(code) + ")"
}
