package pretty_test

import (
	"strings"
	"testing"

	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/Regentag/iridium-go/internal/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBurst() *burst.Burst {
	return &burst.Burst{
		SourceName:        "capture.raw",
		OffsetMs:          1234,
		CentreFrequencyHz: 1626270833,
		ConfidencePct:     95,
		SignalLevel:       -12.5,
		Symbols:           strings.Repeat("01", 12+50),
	}
}

func TestFormatSYFrame(t *testing.T) {
	f := &frame.ClassifiedFrame{Tag: frame.TagSY}
	f.Burst = testBurst()
	f.Direction = classify.Downlink
	f.SY = &frame.SYFields{Sync: []byte{0xAA, 0xAA}, Mismatch: 0}

	out := pretty.Format(f, pretty.Options{})
	require.True(t, strings.HasPrefix(out, "ISY: "))
	assert.Contains(t, out, "capture.raw")
	assert.Contains(t, out, "1626270.833")
	assert.Contains(t, out, "DL")
	assert.Contains(t, out, "Sync=OK")
}

func TestFormatIncludesNonzeroFlagsOnly(t *testing.T) {
	f := &frame.ClassifiedFrame{Tag: frame.TagSY}
	f.Burst = testBurst()
	f.ECUW = 2
	f.LCWRepairCount = 1
	f.SY = &frame.SYFields{Sync: []byte{0xAA}}

	out := pretty.Format(f, pretty.Options{})
	assert.True(t, strings.HasPrefix(out, "ISY-UW:2-LCW:1: "))
}

func TestFormatOmitsZeroFlags(t *testing.T) {
	f := &frame.ClassifiedFrame{Tag: frame.TagSY}
	f.Burst = testBurst()
	f.SY = &frame.SYFields{Sync: []byte{0xAA}}

	out := pretty.Format(f, pretty.Options{})
	assert.True(t, strings.HasPrefix(out, "ISY: "))
}

func TestFormatEchoesExtraTrailer(t *testing.T) {
	f := &frame.ClassifiedFrame{Tag: frame.TagSY}
	f.Burst = testBurst()
	f.Burst.ExtraTrailer = "trailer-token"
	f.SY = &frame.SYFields{Sync: []byte{0xAA}}

	out := pretty.Format(f, pretty.Options{})
	assert.True(t, strings.HasSuffix(out, "trailer-token"))
}

func TestFormatErrorFrame(t *testing.T) {
	f := &frame.ClassifiedFrame{}
	f.Burst = testBurst()
	f.AddError(decodeerr.New("frame.lw", decodeerr.HeaderBCHFailure, "lcw1 BCH repair failed"))

	out := pretty.Format(f, pretty.Options{})
	assert.True(t, strings.HasPrefix(out, "ERR: "))
	assert.Contains(t, out, "lcw1 BCH repair failed")
}

func TestFormatGlobalTimeProvenance(t *testing.T) {
	f := &frame.ClassifiedFrame{Tag: frame.TagSY}
	f.Burst = testBurst()
	f.GlobalTime = 42.5
	f.SY = &frame.SYFields{}

	out := pretty.Format(f, pretty.Options{GlobalTime: true})
	assert.Contains(t, out, "42.500000")
	assert.NotContains(t, out, "capture.raw")
}
