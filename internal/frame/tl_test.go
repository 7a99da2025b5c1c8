package frame_test

import (
	"strings"
	"testing"

	"github.com/Regentag/iridium-go/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTLSplitsThreeFields(t *testing.T) {
	payload := strings.Repeat("1", 96) + strings.Repeat("0", 256) + strings.Repeat("1", 256) + strings.Repeat("0", 256)
	f := newTestFrame()
	frame.DecodeTLForTest(f, payload)

	require.NotNil(t, f.TL)
	assert.Equal(t, frame.TagTL, f.Tag)
	assert.Equal(t, strings.Repeat("0", 256), f.TL.Field1)
	assert.Equal(t, strings.Repeat("1", 256), f.TL.Field2)
	assert.Equal(t, strings.Repeat("0", 256), f.TL.Field3)
	assert.False(t, f.IsError())
}

func TestDecodeTLTooShortRecordsError(t *testing.T) {
	payload := strings.Repeat("1", 96) + strings.Repeat("0", 100)
	f := newTestFrame()
	frame.DecodeTLForTest(f, payload)
	assert.True(t, f.IsError())
}
