package burst_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidLineWithTrailer(t *testing.T) {
	line := "RAW: source1 1000 1626270833 A:12 I:34 95% 10.5 5 [0101] extra"
	b, err := burst.Parse(line)
	require.NoError(t, err)
	assert.True(t, b.Swapped)
	assert.Equal(t, "source1", b.SourceName)
	assert.Equal(t, int64(1000), b.OffsetMs)
	assert.Equal(t, int64(1626270833), b.CentreFrequencyHz)
	assert.Equal(t, 95, b.ConfidencePct)
	assert.InDelta(t, 10.5, b.SignalLevel, 1e-9)
	assert.Equal(t, "0101", b.Symbols)
	assert.Equal(t, "extra", b.ExtraTrailer)
	assert.Equal(t, line, b.RawLine)
}

func TestParseValidLineWithoutTrailer(t *testing.T) {
	line := "RWA: source2 50 1000 A:00 L:00 10% -5.0 2 1100"
	b, err := burst.Parse(line)
	require.NoError(t, err)
	assert.False(t, b.Swapped)
	assert.Equal(t, "", b.ExtraTrailer)
	assert.Equal(t, "1100", b.Symbols)
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := burst.Parse("not a burst line")
	assert.Error(t, err)
}

func TestParseRejectsOddLengthSymbols(t *testing.T) {
	line := "RAW: source1 0 0 A:00 I:00 1% 0.0 1 010"
	_, err := burst.Parse(line)
	assert.Error(t, err)
}
