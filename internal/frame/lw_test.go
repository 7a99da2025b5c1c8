package frame_test

import (
	"strings"
	"testing"

	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLWAllZeroDispatchesToVOFamily(t *testing.T) {
	// An all-zero 46-bit header is a valid codeword of every LCW
	// polynomial (GF(2) remainder of an all-zero dividend is always zero),
	// so this exercises the full repair-then-dispatch path without needing
	// a hand-constructed nonzero codeword.
	payload := strings.Repeat("0", 46+312)
	f := newTestFrame()
	frame.DecodeLWForTest(f, payload, false)

	require.NotNil(t, f.LW)
	assert.Equal(t, 0, f.LW.FrameType)
	assert.Equal(t, "sync", f.LW.CodeName)
	// frame_type 0 dispatches into VO decoding, which always leaves one of
	// its own outcome tags (never the bare "LW" dispatch tag) on the frame.
	assert.Contains(t, []frame.Tag{frame.TagVDA, frame.TagVO6, frame.TagVOD, frame.TagVOC}, f.Tag)
}

func TestDecodeLWTooShortRecordsError(t *testing.T) {
	f := newTestFrame()
	frame.DecodeLWForTest(f, strings.Repeat("0", 10), false)
	assert.True(t, f.IsError())
}
