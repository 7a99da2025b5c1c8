// Package pretty formats a decoded ClassifiedFrame into the canonical
// single-line form spec.md §6 defines: a variant prefix (with an optional
// flag suffix recording UW/LCW/FIX corrections), a common header
// (provenance, frequency, confidence, level, symbol count, direction), and
// a variant-specific body.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/frame"
)

// Options controls header rendering that isn't implied by the frame
// itself (only whether provenance prints as a global timestamp).
type Options struct {
	GlobalTime bool
}

// Format renders one ClassifiedFrame as a single output line, appending
// the burst's extra_trailer token verbatim when present (spec.md §3/§6).
func Format(f *frame.ClassifiedFrame, opts Options) string {
	var line string
	if f.IsError() {
		line = prefixFlags("ERR", f) + ": " + header(f, opts) + " " + strings.Join(errStrings(f), ", ")
	} else {
		tag, body := bodyFor(f)
		line = prefixFlags(tag, f) + ": " + header(f, opts) + body
	}
	if f.Burst != nil && f.Burst.ExtraTrailer != "" {
		line += " " + f.Burst.ExtraTrailer
	}
	return line
}

func errStrings(f *frame.ClassifiedFrame) []string {
	out := make([]string, 0, len(f.ErrorLog))
	for _, e := range f.ErrorLog {
		out = append(out, e.Error())
	}
	return out
}

// prefixFlags builds "<TAG>-UW:n-LCW:n-FIX:n" per the original's prefix
// suffix convention: each flag appears only when its counter is nonzero,
// hyphen-joined, in that fixed order.
func prefixFlags(tag string, f *frame.ClassifiedFrame) string {
	var b strings.Builder
	b.WriteString(tag)
	if f.ECUW != 0 {
		fmt.Fprintf(&b, "-UW:%d", f.ECUW)
	}
	if f.LCWRepairCount != 0 {
		fmt.Fprintf(&b, "-LCW:%d", f.LCWRepairCount)
	}
	if f.FixedErrors != 0 {
		fmt.Fprintf(&b, "-FIX:%d", f.FixedErrors)
	}
	return b.String()
}

// header renders the fields common to every variant: provenance, formatted
// frequency, confidence, level, post-access-code symbol count, direction.
func header(f *frame.ClassifiedFrame, opts Options) string {
	var provenance string
	if opts.GlobalTime {
		provenance = fmt.Sprintf("j %16.6f", f.GlobalTime)
	} else {
		provenance = fmt.Sprintf("%s %014.4f", f.Burst.SourceName, float64(f.Burst.OffsetMs))
	}

	dir := "DL"
	if f.Direction == classify.Uplink {
		dir = "UL"
	}
	symbolCount := len(f.Burst.Symbols)/2 - 12 // after the 24-bit/12-symbol access code

	return fmt.Sprintf("%s %s %3d%% %7.3f %03d %s", provenance, FormatFrequencyKHz(f.Burst.CentreFrequencyHz), f.Burst.ConfidencePct, f.Burst.SignalLevel, symbolCount, dir)
}

// FormatFrequencyKHz renders a centre frequency in Hz as kHz with three
// decimal places ("1626270.000"), matching the original's frequency
// pretty-formatting.
func FormatFrequencyKHz(hz int64) string {
	return fmt.Sprintf("%.3f", float64(hz)/1000.0)
}

// bodyFor returns the output prefix and variant body for a successfully
// classified frame.
func bodyFor(f *frame.ClassifiedFrame) (prefix, body string) {
	switch f.Tag {
	case frame.TagASCII:
		return "MSG", msgBody(f)
	case frame.TagMS3:
		return "MS3", msgBody(f)
	case frame.TagMS:
		return "IMS", msgBody(f)
	case frame.TagTL:
		return "ITL", tlBody(f)
	case frame.TagBC:
		return "IBC", bcBody(f)
	case frame.TagRA:
		return "IRA", raBody(f)
	case frame.TagDA:
		return "IDA", daBody(f)
	case frame.TagSY:
		return "ISY", syBody(f)
	case frame.TagI38, frame.TagI36, frame.TagU3:
		return string(f.Tag), u3Body(f)
	case frame.TagVO6, frame.TagVOD, frame.TagVOC:
		return string(f.Tag), voBody(f)
	case frame.TagIIP, frame.TagVDA, frame.TagIIQ, frame.TagIIR, frame.TagIIU:
		return string(f.Tag), ipBody(f)
	case frame.TagLW, frame.TagU6, frame.TagUx:
		return "IRI", lwBody(f)
	default:
		return "IRI", fmt.Sprintf(" %s", f.Tag)
	}
}

func msgBody(f *frame.ClassifiedFrame) string {
	if f.MS == nil {
		return ""
	}
	ms := f.MS
	var b strings.Builder
	fmt.Fprintf(&b, " blk=%d frm=%02d grp=%s ctr1=%d", ms.Block, ms.Frame, ms.Group, ms.Ctr1)
	if ms.Sub != nil {
		fmt.Fprintf(&b, " ric=%d fmt=%d", ms.Sub.RIC, ms.Sub.Format)
		if ms.Sub.ASCII != nil {
			fmt.Fprintf(&b, " seq=%02d csum=%02x \"%s\"", ms.Sub.ASCII.Seq, ms.Sub.ASCII.Checksum, ms.Sub.ASCII.ASCII)
		} else if ms.Sub.Unknown != nil {
			fmt.Fprintf(&b, " data=%s", ms.Sub.Unknown.MsgData)
		}
	}
	return b.String()
}

func tlBody(f *frame.ClassifiedFrame) string {
	if f.TL == nil {
		return ""
	}
	return fmt.Sprintf(" [%s] [%s] [%s]", hexOf(f.TL.Field1), hexOf(f.TL.Field2), hexOf(f.TL.Field3))
}

func bcBody(f *frame.ClassifiedFrame) string {
	if f.BC == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, " type=%d", f.BC.BCType)
	if f.BC.LengthTag != "" {
		fmt.Fprintf(&b, " %s", f.BC.LengthTag)
	}
	for _, sb := range f.BC.SubBlocks {
		fmt.Fprintf(&b, " {%s}", sb.Kind)
	}
	return b.String()
}

func raBody(f *frame.ClassifiedFrame) string {
	if f.RA == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, " sat=%d beam=%d lat=%.3f lon=%.3f alt=%.1f", f.RA.SatID, f.RA.BeamID, f.RA.Lat, f.RA.Lon, f.RA.Alt)
	if !f.RA.PageSane {
		b.WriteString(" page_sane=no")
	}
	for _, p := range f.RA.Pages {
		switch p.Kind {
		case "NONE", "FILL":
			fmt.Fprintf(&b, " %s", p.Kind)
		default:
			fmt.Fprintf(&b, " %d/%d", p.TMSI, p.MSCID)
		}
	}
	return b.String()
}

func daBody(f *frame.ClassifiedFrame) string {
	if f.DA == nil {
		return ""
	}
	da := f.DA
	var b strings.Builder
	fmt.Fprintf(&b, " ctr=%d len=%02d [%s]", da.Ctr, da.Len, hexBytes(da.SBDPayload))
	if da.Len > 0 {
		fmt.Fprintf(&b, " %04x CRC:%s", da.CRC16, okNo(da.CRCOk))
	}
	return b.String()
}

func syBody(f *frame.ClassifiedFrame) string {
	if f.SY == nil {
		return ""
	}
	status := "OK"
	if f.SY.Mismatch > 0 {
		status = fmt.Sprintf("no(%d)", f.SY.Mismatch)
	}
	return " Sync=" + status
}

func u3Body(f *frame.ClassifiedFrame) string {
	if f.U3 == nil {
		return ""
	}
	switch {
	case f.U3.RS8Ok:
		return fmt.Sprintf(" RS8=OK [%s]", hexBytes(f.U3.RSMessage))
	case f.U3.RS6Ok:
		return fmt.Sprintf(" RS6=OK [%s]", hexBytes(f.U3.RSMessage))
	default:
		return " RS=no"
	}
}

func voBody(f *frame.ClassifiedFrame) string {
	if f.VO == nil {
		return ""
	}
	if f.VO.RSOk {
		return fmt.Sprintf(" RS=OK [%s]", hexBytes(f.VO.RSMessage))
	}
	return fmt.Sprintf(" RS=no [%s]", hexBytes(f.VO.PayloadF))
}

func ipBody(f *frame.ClassifiedFrame) string {
	if f.IP == nil {
		return ""
	}
	ip := f.IP
	if ip.CRCVal == 0 {
		cs := "no"
		if ip.CsOK {
			cs = "OK"
		}
		return fmt.Sprintf(" type:%02x seq=%03d ack=%03d cs=%s len=%03d [%s] %06x FCS:OK",
			ip.Hdr, ip.Seq, ip.Ack, cs, ip.Len, hexBytes(ip.Data), ip.Cksum)
	}
	if ip.RSRecovered != nil {
		return fmt.Sprintf(" [%s] C=%04x", hexBytes(ip.RSRecovered), ip.Checksum16)
	}
	return " [no data]"
}

func lwBody(f *frame.ClassifiedFrame) string {
	if f.LW == nil {
		return ""
	}
	lw := f.LW
	switch {
	case f.U6 != nil:
		return fmt.Sprintf(" LCW(%d,%s,%s) [%s]", lw.FrameType, lw.CodeName, lw.LCW3, hexOf(f.U6.Raw))
	case f.Ux != nil:
		return fmt.Sprintf(" LCW(%d,%s,%s) U%d [%s]", lw.FrameType, lw.CodeName, lw.LCW3, f.Ux.FrameType, hexOf(f.Ux.Raw))
	default:
		return fmt.Sprintf(" LCW(%d,%s,%s)", lw.FrameType, lw.CodeName, lw.LCW3)
	}
}

func hexOf(bits string) string {
	groups := make([]string, 0, len(bits)/8+1)
	for len(bits) >= 8 {
		v, _ := strconv.ParseUint(bits[:8], 2, 8)
		groups = append(groups, fmt.Sprintf("%02x", v))
		bits = bits[8:]
	}
	return strings.Join(groups, ".")
}

func hexBytes(b []byte) string {
	groups := make([]string, len(b))
	for i, v := range b {
		groups[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(groups, ".")
}

func okNo(ok bool) string {
	if ok {
		return "OK"
	}
	return "no"
}
