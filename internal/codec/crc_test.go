package codec_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/stretchr/testify/assert"
)

func TestCRC16CCITTFalseKnownVector(t *testing.T) {
	// "123456789" -> 0x29B1 is the standard CRC-16/CCITT-FALSE check value.
	assert.Equal(t, uint16(0x29B1), codec.CRC16CCITTFalse([]byte("123456789")))
}

func TestCRC16CCITTFalseEmpty(t *testing.T) {
	assert.Equal(t, uint16(0xFFFF), codec.CRC16CCITTFalse(nil))
}

func TestCRC24IIPDeterministic(t *testing.T) {
	a := codec.CRC24IIP([]byte{0x01, 0x02, 0x03})
	b := codec.CRC24IIP([]byte{0x01, 0x02, 0x03})
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a, uint32(0xFFFFFF))
}

func TestCRC24IIPDiffersOnChange(t *testing.T) {
	a := codec.CRC24IIP([]byte{0x01, 0x02, 0x03})
	b := codec.CRC24IIP([]byte{0x01, 0x02, 0x04})
	assert.NotEqual(t, a, b)
}

func TestChecksum16EndAroundCarry(t *testing.T) {
	words := []uint16{0xFFFF, 0x0001}
	got := codec.Checksum16(words)
	// sum = 0x10000, folded -> 0x0000 + carry 1 -> 0x0001, complement -> 0xFFFE
	assert.Equal(t, uint16(0xFFFE), got)
}
