package bitutil_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, "0110", bitutil.Reverse("0110"))
	assert.Equal(t, "100", bitutil.Reverse("001"))
}

func TestSymbolReverse(t *testing.T) {
	assert.Equal(t, "0110", bitutil.SymbolReverse("1001"))
	assert.Equal(t, "0111", bitutil.SymbolReverse("10110")) // odd tail discarded
}

func TestReverseByte(t *testing.T) {
	assert.Equal(t, byte(0x01), bitutil.ReverseByte(0x80))
	assert.Equal(t, byte(0xFF), bitutil.ReverseByte(0xFF))
	assert.Equal(t, byte(0x00), bitutil.ReverseByte(0x00))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, bitutil.HasPrefix("110010", "1100"))
	assert.False(t, bitutil.HasPrefix("110010", "0011"))
}

func TestHammingDistance(t *testing.T) {
	assert.Equal(t, 0, bitutil.HammingDistance([]int{1, 0, 1}, []int{1, 0, 1}))
	assert.Equal(t, 2, bitutil.HammingDistance([]int{1, 0, 1}, []int{0, 0, 0}))
	assert.Equal(t, 1, bitutil.HammingDistance([]int{1, 0}, []int{1, 0, 1}))
}

func TestChunk(t *testing.T) {
	blocks, extra := bitutil.Chunk("11110000101", 4)
	assert.Equal(t, []bitutil.Bits{"1111", "0000"}, blocks)
	assert.Equal(t, "101", extra)
}

func TestChunkExactDropsShortTail(t *testing.T) {
	blocks := bitutil.ChunkExact("111100001", 4)
	assert.Equal(t, []bitutil.Bits{"1111", "0000"}, blocks)
}

func TestUint(t *testing.T) {
	assert.Equal(t, uint64(0b1011), bitutil.Uint("1011"))
	assert.Equal(t, uint64(0), bitutil.Uint("0000"))
}

func TestUintLSBFirst(t *testing.T) {
	assert.Equal(t, bitutil.Uint("1101"), bitutil.UintLSBFirst("1011"))
}

func TestInt(t *testing.T) {
	assert.Equal(t, int64(5), bitutil.Int("0101"))
	assert.Equal(t, int64(-8), bitutil.Int("1000"))
	assert.Equal(t, int64(-1), bitutil.Int("1111"))
	assert.Equal(t, int64(0), bitutil.Int(""))
}

func TestAllZeroAndAllOnes(t *testing.T) {
	assert.True(t, bitutil.AllZero("0000"))
	assert.False(t, bitutil.AllZero("0001"))
	assert.True(t, bitutil.AllOnes("1111"))
	assert.False(t, bitutil.AllOnes("1110"))
}

func TestParity(t *testing.T) {
	assert.Equal(t, byte('0'), bitutil.Parity("1100"))
	assert.Equal(t, byte('1'), bitutil.Parity("1110"))
}
