package frame

import "github.com/Regentag/iridium-go/internal/bitutil"

// Exported wrappers around unexported decoders, for frame_test's black-box
// tests (Go's standard export_test.go idiom).

func DecodeMSForTest(f *ClassifiedFrame, payload bitutil.Bits)          { decodeMS(f, payload) }
func DecodeTLForTest(f *ClassifiedFrame, payload bitutil.Bits)          { decodeTL(f, payload) }
func DecodeBCForTest(f *ClassifiedFrame, payload bitutil.Bits, h bool)  { decodeBC(f, payload, h) }
func DecodeSYForTest(f *ClassifiedFrame, body bitutil.Bits)             { decodeSY(f, body) }
func DecodeU3ForTest(f *ClassifiedFrame, body bitutil.Bits)             { decodeU3(f, body) }
func DecodeU6ForTest(f *ClassifiedFrame, body bitutil.Bits)             { decodeU6(f, body) }
func DecodeUxForTest(f *ClassifiedFrame, body bitutil.Bits, ft int)     { decodeUx(f, body, ft) }
func DecodeVOForTest(f *ClassifiedFrame, body bitutil.Bits)             { decodeVO(f, body) }
func DecodeIPCoreForTest(f *ClassifiedFrame, body bitutil.Bits, t Tag)  { decodeIPCore(f, body, t) }
func DecodeDAForTest(f *ClassifiedFrame, body bitutil.Bits)             { decodeDA(f, body) }
func DecodeRAForTest(f *ClassifiedFrame, payload bitutil.Bits)          { decodeRA(f, payload) }
func DecodeLWForTest(f *ClassifiedFrame, payload bitutil.Bits, h bool)  { decodeLW(f, payload, h) }

func BuildBytePayloadsForTest(body bitutil.Bits) (forward, reversed, groups6 []byte) {
	return buildBytePayloads(body)
}

func ChecksumWordsForTest(msg []byte) []uint16 { return checksum16Words(msg) }
