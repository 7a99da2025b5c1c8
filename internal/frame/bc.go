package frame

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/Regentag/iridium-go/internal/decodeerr"
)

const bcHeaderPoly = 29
const bcSubBlockLen = 42

// BCFields is the broadcast (BC) variant, spec.md §3/§4.3.
type BCFields struct {
	BCType          int
	HeaderBCHErrors int
	SubBlocks       []BCSubBlock
	LengthTag       string // "SHORT", "LONG", or "" when exactly 4
}

// BCSubBlock is one 42-bit broadcast sub-block. Only the fields relevant
// to its discriminated kind are populated.
type BCSubBlock struct {
	Kind string // "acq", "reserved_pwr", "iri_time", "tmsi_expiry", "reserved4", "unknown", "chan_assign", "empty"

	// acq (sub-block 1, bc_type==0)
	SvID         int
	BeamID       int
	Slot         int
	SvBlocking   int
	AcquClasses  int
	AcquSubband  int
	AcquChannels int

	// sub-block 2 variants
	Type2        int
	IRITime      uint64
	IRITimeUTC   float64
	TMSIExpiry   uint64
	TMSIExpUTC   float64
	MaxUplinkPwr int
	Reserved4OK  bool

	// channel-assignment sub-blocks
	RandomID       int
	Timeslot       int
	UplinkSubband  int
	DownlinkSubband int
	Access         int
	DTOA           int
	DFOA           int
}

const chanAssignFixedPattern = "000100000000100001110000110000110011110000"

func decodeBC(f *ClassifiedFrame, payload bitutil.Bits, harder bool) {
	const compName = "frame.bc"
	if len(payload) < 6 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "fewer than 6 header bits"))
		return
	}
	f.HeaderBits = payload[:6]

	errs, data, _ := codec.Repair(bcHeaderPoly, payload[:6])
	if errs < 0 {
		f.AddError(decodeerr.New(compName, decodeerr.HeaderBCHFailure, "broadcast header BCH repair failed"))
		return
	}
	if errs > 0 {
		f.FixedErrors += errs
	}

	bc := &BCFields{
		BCType:          int(bitutil.Uint(data)),
		HeaderBCHErrors: errs,
	}

	blocks, extra := bitutil.Chunk(payload[6:], bcSubBlockLen)
	f.DescrambleExtra = extra
	f.DescrambledBlocks = blocks

	switch {
	case len(blocks) < 4:
		bc.LengthTag = "SHORT"
	case len(blocks) > 4:
		bc.LengthTag = "LONG"
		blocks = blocks[:4]
	}

	if bc.BCType == 0 {
		for i, blk := range blocks {
			switch i {
			case 0:
				bc.SubBlocks = append(bc.SubBlocks, decodeBCAcq(blk))
			case 1:
				bc.SubBlocks = append(bc.SubBlocks, decodeBCType2(blk))
			default:
				bc.SubBlocks = append(bc.SubBlocks, decodeBCChanAssign(blk))
			}
		}
	}

	f.BC = bc
	f.Tag = TagBC
}

func decodeBCAcq(b bitutil.Bits) BCSubBlock {
	return BCSubBlock{
		Kind:         "acq",
		SvID:         int(bitutil.Uint(b[0:7])),
		BeamID:       int(bitutil.Uint(b[7:13])),
		Slot:         int(bitutil.Uint(b[14:15])),
		SvBlocking:   int(bitutil.Uint(b[15:16])),
		AcquClasses:  int(bitutil.Uint(b[16:32])),
		AcquSubband:  int(bitutil.Uint(b[32:37])),
		AcquChannels: int(bitutil.Uint(b[37:40])),
	}
}

// iriTimeScale and iriTimeOffset implement spec.md §4.3's "unix = iri_time·0.090 + 1399818235".
const iriTimeScale = 0.090
const iriTimeOffset = 1399818235

func decodeBCType2(b bitutil.Bits) BCSubBlock {
	sub := BCSubBlock{Type2: int(bitutil.Uint(b[0:6]))}
	rest := b[6:]
	switch sub.Type2 {
	case 0:
		sub.Kind = "reserved_pwr"
		if len(rest) >= 36 {
			sub.MaxUplinkPwr = int(bitutil.Uint(rest[30:36]))
		}
	case 1:
		sub.Kind = "iri_time"
		if len(rest) >= 32 {
			sub.IRITime = bitutil.Uint(rest[0:32])
			sub.IRITimeUTC = float64(sub.IRITime)*iriTimeScale + iriTimeOffset
		}
	case 2:
		sub.Kind = "tmsi_expiry"
		if len(rest) >= 33 {
			sub.TMSIExpiry = bitutil.Uint(rest[0:33])
			sub.TMSIExpUTC = float64(sub.TMSIExpiry)*iriTimeScale + iriTimeOffset
		}
	case 4:
		sub.Kind = "reserved4"
		sub.Reserved4OK = b == chanAssignFixedPattern
	default:
		sub.Kind = "unknown"
	}
	return sub
}

func decodeBCChanAssign(b bitutil.Bits) BCSubBlock {
	if b == allOnesThenZero(b) {
		return BCSubBlock{Kind: "empty"}
	}
	sub := BCSubBlock{Kind: "chan_assign"}
	if len(b) < 40 {
		return sub
	}
	sub.RandomID = int(bitutil.Uint(b[3:11]))
	sub.Timeslot = int(bitutil.Uint(b[11:13])) + 1
	sub.UplinkSubband = int(bitutil.Uint(b[13:18]))
	sub.DownlinkSubband = int(bitutil.Uint(b[18:23]))
	sub.Access = int(bitutil.Uint(b[23:26])) + 1
	sub.DTOA = int(bitutil.Uint(b[26:34]))
	sub.DFOA = int(bitutil.Uint(b[34:40]))
	return sub
}

// allOnesThenZero builds the fixed "111000...0" sentinel pattern spec.md
// §4.3 uses to mark an empty channel-assignment sub-block: three ones
// followed by zeros out to the sub-block length.
func allOnesThenZero(b bitutil.Bits) bitutil.Bits {
	n := len(b)
	if n < 3 {
		return b
	}
	out := make([]byte, n)
	out[0], out[1], out[2] = '1', '1', '1'
	for i := 3; i < n; i++ {
		out[i] = '0'
	}
	return string(out)
}
