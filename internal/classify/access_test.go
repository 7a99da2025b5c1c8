package classify_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	downlinkAccess = "001100000011000011110011"
	uplinkAccess   = "110011000011110011111100"
)

func TestDetectDirectionExactDownlink(t *testing.T) {
	dir, payload, ecUW, err := classify.DetectDirection(downlinkAccess+"1010", false)
	require.NoError(t, err)
	assert.Equal(t, classify.Downlink, dir)
	assert.Equal(t, "1010", payload)
	assert.Equal(t, 0, ecUW)
}

func TestDetectDirectionExactUplink(t *testing.T) {
	dir, payload, ecUW, err := classify.DetectDirection(uplinkAccess+"0101", false)
	require.NoError(t, err)
	assert.Equal(t, classify.Uplink, dir)
	assert.Equal(t, "0101", payload)
	assert.Equal(t, 0, ecUW)
}

func TestDetectDirectionTooShort(t *testing.T) {
	_, _, _, err := classify.DetectDirection("0011", false)
	assert.Error(t, err)
}

func TestDetectDirectionNoMatchWithoutCorrection(t *testing.T) {
	garbage := "000000000000000000000000"
	_, _, _, err := classify.DetectDirection(garbage, false)
	assert.Error(t, err)
}
