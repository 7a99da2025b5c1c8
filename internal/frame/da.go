package frame

import (
	"strings"

	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/Regentag/iridium-go/internal/interleave"
)

const daBCHPoly = 3545 // spec.md §6 "3545 (LCW data)"

// DAFields is the data-over-LCW (SBD) variant, spec.md §3/§4.3.
type DAFields struct {
	Flags1 bitutil.Bits
	Flag1B bool
	Ctr    int
	Flags2 bitutil.Bits
	Len    int
	Flags3 bool

	CRC16      int
	CRCOk      bool
	TA         []byte
	SBDPayload []byte
}

// decodeDA rebuilds the LW payload's 10 31-bit BCH blocks (spec.md §4.3's
// dispatch-table row: two 124-bit halves two-way de-interleaved and
// rearranged into 31-bit blocks, plus a 64-bit tail whose extra bit is
// dropped), BCH-repairs each against poly 3545, and reads the resulting
// concatenated data stream's fields.
func decodeDA(f *ClassifiedFrame, body bitutil.Bits) {
	const compName = "frame.da"
	const mainLen = 124*2 + 64
	if len(body) < mainLen {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "fewer than 312 bits for DA reconstruction"))
		return
	}
	f.DescrambleExtra = body[mainLen:]
	data := body[:mainLen]

	var blocks []bitutil.Bits
	for _, m := range []bitutil.Bits{data[0:124], data[124:248]} {
		b1, b2 := interleave.TwoWay(m)
		four, _ := bitutil.Chunk(b1+b2, 31)
		if len(four) < 4 {
			f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "124-bit block did not yield 4 31-bit slices"))
			return
		}
		blocks = append(blocks, four[3], four[1], four[2], four[0])
	}
	eb1, eb2 := interleave.TwoWay(data[248:312])
	if len(eb1) < 32 || len(eb2) < 32 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "64-bit tail did not de-interleave to 32+32 bits"))
		return
	}
	blocks = append(blocks, eb2[1:], eb1[1:])
	f.DescrambledBlocks = blocks

	var bitstream strings.Builder
	fixed := 0
	for _, blk := range blocks {
		errs, word, _ := codec.Repair(daBCHPoly, blk)
		if errs < 0 {
			if bitstream.Len() == 0 {
				f.AddError(decodeerr.New(compName, decodeerr.BlockBCHFailure, "DA BCH repair failed"))
			}
			break
		}
		if errs > 0 {
			fixed++
		}
		bitstream.WriteString(word)
	}
	f.FixedErrors += fixed

	bits := bitstream.String()
	if len(bits) < 20 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "no complete DA header word recovered"))
		return
	}

	da := &DAFields{
		Flags1: bits[0:4],
		Flag1B: bits[4:5] == "1",
		Ctr:    int(bitutil.Uint(bits[5:8])),
		Flags2: bits[8:11],
		Len:    int(bitutil.Uint(bits[11:16])),
		Flags3: bits[16:17] == "1",
	}
	if bitutil.Uint(bits[17:20]) != 0 {
		f.AddError(decodeerr.New(compName, decodeerr.ZeroFieldViol, "zero1 not 0"))
	}

	if len(bits) < 9*20+16 {
		f.AddError(decodeerr.New(compName, decodeerr.NotEnoughData, "fewer than 9*20+16 recovered bits"))
		f.DA = da
		f.Tag = TagDA
		return
	}

	if da.Len > 0 {
		da.CRC16 = int(bitutil.Uint(bits[9*20 : 9*20+16]))
		da.TA = bytesFromBits(bitutil.ChunkExact(bits[20:9*20], 8))

		crcStream := bits[:20] + strings.Repeat("0", 12) + bits[20:len(bits)-4]
		theCRC := codec.CRC16CCITTFalse(bytesFromBits(bitutil.ChunkExact(crcStream, 8)))
		da.CRCOk = theCRC == 0
		if !da.CRCOk {
			f.AddError(decodeerr.New(compName, decodeerr.CRCFail, "DA CRC-16 mismatch"))
		}
	} else {
		da.TA = bytesFromBits(bitutil.ChunkExact(bits[20:min(11*20, len(bits))], 8))
	}

	if bitutil.Uint(bits[9*20+16:]) != 0 {
		f.AddError(decodeerr.New(compName, decodeerr.ZeroFieldViol, "zero2 not 0"))
	}

	da.SBDPayload = bytesFromBits(bitutil.ChunkExact(bits[20:9*20], 8))

	f.DA = da
	f.Tag = TagDA
}
