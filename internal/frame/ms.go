package frame

import (
	"strconv"
	"strings"

	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/Regentag/iridium-go/internal/interleave"
)

const messagingBCHPoly = 1897 // spec.md §6 "BCH polys used"
const msgWordWidth = 20       // spec.md §4.3 "resulting 20-bit words"

// MSFields carries the messaging (MS) variant's fields, spec.md §3.
type MSFields struct {
	Block    int
	Frame    int
	BCHBlks  int
	Unknown1 bool
	Secondary bool
	Group    string // "A" or "0".."3"
	Ctr1     uint64
	OddBits  string
	MsgPre   string

	Sub *MSMessage // populated if a pager payload was present
}

// MSMessage is the decoded pager payload, narrowed by msg_format into
// ASCII (format 5) or Unknown (format 3), spec.md §3/§4.3.
type MSMessage struct {
	RIC     uint64
	Format  int
	ASCII   *MSAsciiFields
	Unknown *MSUnknownFields
}

// MSAsciiFields is MS/ASCII (format 5), spec.md §4.3.
type MSAsciiFields struct {
	Seq      int
	Unknown1 int
	Ctr      int
	CtrMax   int
	HasCtr   bool
	Checksum int
	ASCII    string
	Rest     string
}

// MSUnknownFields is MS/Unknown (format 3), spec.md §4.3.
type MSUnknownFields struct {
	Unknown2 int
	MsgData  string
}

func decodeMS(f *ClassifiedFrame, payload bitutil.Bits) {
	const compName = "frame.ms"
	f.HeaderBits = payload[:32]
	body := payload[32:]

	blocks, extra := bitutil.Chunk(body, 64)
	f.DescrambleExtra = extra

	var bitstream strings.Builder
	var oddBits strings.Builder

	for _, block := range blocks {
		odd, even := interleave.TwoWay(block)
		f.DescrambledBlocks = append(f.DescrambledBlocks, odd, even)
		for _, half := range []bitutil.Bits{odd, even} {
			errs, data, _ := codec.RepairWidth(messagingBCHPoly, half, msgWordWidth)
			if errs < 0 {
				f.AddError(decodeerr.New(compName, decodeerr.BlockBCHFailure, "messaging word BCH repair failed"))
				continue
			}
			if errs > 0 {
				f.FixedErrors += errs
			}
			bitstream.WriteString(data)
			if len(data) > 0 {
				oddBits.WriteByte(data[0])
			}
		}
	}

	bits := bitstream.String()
	odd := oddBits.String()

	if len(bits) < 20 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "messaging bitstream shorter than one word"))
		f.Tag = TagMS
		return
	}

	ms := &MSFields{OddBits: odd}

	ms.Block = int(bitutil.Uint(bits[0:4]))
	ms.Frame = int(bitutil.Uint(bits[4:10]))
	ms.BCHBlks = int(bitutil.Uint(bits[10:14]))
	ms.Unknown1 = bits[14] == '1'
	ms.Secondary = bits[15] == '1'

	var ctr1Bits string
	if len(odd) > 1 {
		ctr1Bits = string(bits[15]) + string(odd[1])
	}
	if len(bits) >= 32 {
		ctr1Bits += bits[20:32]
	}
	ms.Ctr1 = bitutil.Uint(ctr1Bits)

	if len(odd) > 0 && odd[0] == '1' {
		ms.Group = "A"
	} else if len(bits) >= 20 {
		ms.Group = strconv.Itoa(int(bitutil.Uint(bits[18:20])))
	}

	rest := bits[20:]

	// Trailer removal, at most twice: a word of all-ones at the tail,
	// signalled by odd_bits ending in '1' (spec.md §4.3).
	for i := 0; i < 2 && len(odd) > 0 && odd[len(odd)-1] == '1' && len(rest) >= 20; i++ {
		tail := rest[len(rest)-20:]
		if !bitutil.AllOnes(tail) {
			f.AddError(decodeerr.New(compName, decodeerr.TrailerMismatch, "expected all-ones trailer word"))
			break
		}
		rest = rest[:len(rest)-20]
		odd = odd[:len(odd)-1]
	}

	if len(odd) > 0 && odd[0] == '1' && len(rest) >= 80 {
		ms.MsgPre = rest[:80]
		rest = rest[80:]
	}

	if len(rest) >= 20 {
		ricEnd, fmtEnd := min(22, len(rest)), min(27, len(rest))
		ric := bitutil.UintLSBFirst(rest[:ricEnd])
		format := int(bitutil.Uint(rest[ricEnd:fmtEnd]))
		data := rest[fmtEnd:]

		sub := &MSMessage{RIC: ric, Format: format}
		switch format {
		case 5:
			sub.ASCII = decodeMSAscii(data)
		case 3:
			sub.Unknown = decodeMSUnknown(data)
		default:
			f.AddError(decodeerr.New(compName, decodeerr.UnsupportedFormat, "msg_format outside {3,5}"))
		}
		ms.Sub = sub
	}

	f.MS = ms
	f.Tag = TagMS
	if ms.Sub != nil {
		if ms.Sub.ASCII != nil {
			f.Tag = TagASCII
		} else if ms.Sub.Unknown != nil {
			f.Tag = TagMS3
		}
	}
}

func decodeMSAscii(bits bitutil.Bits) *MSAsciiFields {
	out := &MSAsciiFields{}
	if len(bits) < 6+4+10+1 {
		return out
	}
	out.Seq = int(bitutil.Uint(bits[0:6]))
	// bits[6:10] is msg_zero1, required to be 0 per invariant; no field kept.
	out.Unknown1 = int(bitutil.Uint(bits[10:20]))
	lenBit := bits[20]
	pos := 21

	if lenBit == '1' && pos+4 <= len(bits) {
		lfl := int(bitutil.Uint(bits[pos : pos+4]))
		pos += 4
		if lfl == 1 || lfl == 2 {
			if pos+2*lfl <= len(bits) {
				out.Ctr = int(bitutil.Uint(bits[pos : pos+lfl]))
				pos += lfl
				out.CtrMax = int(bitutil.Uint(bits[pos : pos+lfl]))
				pos += lfl
				out.HasCtr = true
			}
		}
	}

	// msg_zero2 (1 bit, must be 0)
	pos++
	if pos+7 <= len(bits) {
		out.Checksum = int(bitutil.Uint(bits[pos : pos+7]))
		pos += 7
	}

	rest := bits[pos:]
	groups := bitutil.ChunkExact(rest, 7)
	var sb strings.Builder
	for _, g := range groups {
		v := bitutil.Uint(g)
		if v == 3 {
			break
		}
		if v < 32 || v == 127 {
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(int(v)))
			sb.WriteString("]")
			continue
		}
		sb.WriteByte(byte(v))
	}
	out.ASCII = sb.String()
	_, out.Rest = bitutil.Chunk(rest, 7)
	return out
}

func decodeMSUnknown(bits bitutil.Bits) *MSUnknownFields {
	out := &MSUnknownFields{}
	if len(bits) == 0 {
		return out
	}
	out.Unknown2 = int(bitutil.Uint(bits[:1]))
	out.MsgData = bits[1:]
	return out
}

