package frame_test

import (
	"strings"
	"testing"

	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitsOfByte(b byte) string {
	out := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(7-i)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

func repeatBits(b byte, n int) string {
	return strings.Repeat(bitsOfByte(b), n)
}

func TestDecodeSYAllMatch(t *testing.T) {
	body := repeatBits(0xAA, 39)
	f := newTestFrame()
	frame.DecodeSYForTest(f, body)
	require.NotNil(t, f.SY)
	assert.Equal(t, frame.TagSY, f.Tag)
	assert.Equal(t, 0, f.SY.Mismatch)
	assert.Len(t, f.SY.Sync, 39)
}

func TestDecodeSYMismatch(t *testing.T) {
	body := repeatBits(0xAA, 38) + bitsOfByte(0x55)
	f := newTestFrame()
	frame.DecodeSYForTest(f, body)
	assert.Equal(t, 1, f.SY.Mismatch)
}
