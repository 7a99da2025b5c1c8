package frame

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
)

// IPFields is the IP-over-PPP variant, spec.md §3/§4.3. Reached either
// directly (LW frame_type==1) or via a VO frame whose CRC-24 identifies it
// as a misrouted VDA frame; decodeIPCore serves both.
type IPFields struct {
	CRCVal uint32
	Hdr    int
	Seq    int
	Ack    int
	Cs     int
	CsOK   bool
	Len    int
	Data   []byte
	Cksum  uint32

	RSRecovered []byte
	Checksum16  uint16
}

func decodeIPCore(f *ClassifiedFrame, body bitutil.Bits, tag Tag) {
	forward, reversed, _ := buildBytePayloads(body)
	ip := &IPFields{CRCVal: codec.CRC24IIP(reversed)}

	if ip.CRCVal == 0 {
		ip.Hdr = int(reversed[0])
		ip.Seq = int(reversed[1])
		ip.Ack = int(reversed[2])
		ip.Cs = int(reversed[3])
		sum := ip.Hdr + ip.Seq + ip.Ack + ip.Cs
		for sum > 255 {
			sum -= 255
		}
		ip.CsOK = sum == 255
		ip.Len = int(reversed[4])
		if ip.Len > 31 {
			f.AddWarning("ip_len>31: ip_data truncated to 31 bytes")
		}
		ip.Data = append([]byte(nil), reversed[5:36]...)
		ip.Cksum = uint32(reversed[36])<<16 | uint32(reversed[37])<<8 | uint32(reversed[38])

		f.IP = ip
		f.Tag = tag
		return
	}

	ok, msg, _ := codec.RSFix8(forward)
	if !ok {
		f.IP = ip
		f.Tag = TagIIU
		return
	}
	ip.RSRecovered = msg
	ip.Checksum16 = codec.Checksum16(checksum16Words(msg))

	f.IP = ip
	if ip.Checksum16 == 0 {
		f.Tag = TagIIR
	} else {
		f.Tag = TagIIQ
	}
}
