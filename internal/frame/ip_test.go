package frame_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIPCoreOnFailedCRCAttemptsRS(t *testing.T) {
	body := repeatBits(0x3C, 39)
	f := newTestFrame()
	frame.DecodeIPCoreForTest(f, body, frame.TagIIP)
	require.NotNil(t, f.IP)
	assert.Contains(t, []frame.Tag{frame.TagIIP, frame.TagIIQ, frame.TagIIR, frame.TagIIU}, f.Tag)
}

func TestDecodeIPCoreHeaderChecksumField(t *testing.T) {
	// hdr+seq+ack+cs reducing to 255 is the CsOK condition, but it is only
	// evaluated on the CRCVal==0 branch. This feeds an all-zero body and
	// checks CsOK against that formula only if the CRC-24 happens to pass;
	// otherwise the test asserts nothing beyond a non-nil IP record.
	body := repeatBits(0x00, 39)
	f := newTestFrame()
	frame.DecodeIPCoreForTest(f, body, frame.TagIIP)
	require.NotNil(t, f.IP)
	if f.IP.CRCVal == 0 {
		sum := f.IP.Hdr + f.IP.Seq + f.IP.Ack + f.IP.Cs
		for sum > 255 {
			sum -= 255
		}
		assert.Equal(t, sum == 255, f.IP.CsOK)
	}
}
