package frame_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVOProducesOneOfItsOutcomeTags(t *testing.T) {
	body := repeatBits(0x5A, 39)
	f := newTestFrame()
	frame.DecodeVOForTest(f, body)

	switch f.Tag {
	case frame.TagVDA:
		require.NotNil(t, f.IP)
	case frame.TagVO6, frame.TagVOD, frame.TagVOC:
		require.NotNil(t, f.VO)
		assert.Len(t, f.VO.PayloadF, 39)
		assert.Len(t, f.VO.PayloadR, 39)
	default:
		t.Fatalf("unexpected tag %s", f.Tag)
	}
}

func TestDecodeVOPayloadReversalMatchesForward(t *testing.T) {
	body := repeatBits(0x80, 39) // 0x80 reversed is 0x01
	f := newTestFrame()
	frame.DecodeVOForTest(f, body)
	if f.VO == nil {
		return // dispatched to IP as VDA, reversal is exercised elsewhere
	}
	assert.Equal(t, byte(0x80), f.VO.PayloadF[0])
	assert.Equal(t, byte(0x01), f.VO.PayloadR[0])
}
