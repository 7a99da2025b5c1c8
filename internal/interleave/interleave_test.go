package interleave_test

import (
	"strings"
	"testing"

	"github.com/Regentag/iridium-go/internal/interleave"
	"github.com/stretchr/testify/assert"
)

func TestTwoWay(t *testing.T) {
	odd, even := interleave.TwoWay("00011011")
	assert.Equal(t, "1110", odd)
	assert.Equal(t, "0100", even)
}

func TestThreeWay(t *testing.T) {
	first, second, third := interleave.ThreeWay("001001110011")
	assert.Equal(t, "1110", first)
	assert.Equal(t, "0001", second)
	assert.Equal(t, "1100", third)
}

func TestLCWAllZero(t *testing.T) {
	w1, w2, w3 := interleave.LCW(strings.Repeat("0", 46))
	assert.Equal(t, strings.Repeat("0", 7), w1)
	assert.Equal(t, strings.Repeat("0", 13), w2)
	assert.Equal(t, strings.Repeat("0", 26), w3)
}

func TestLCWSplitWidths(t *testing.T) {
	w1, w2, w3 := interleave.LCW(strings.Repeat("1", 46))
	assert.Len(t, w1, 7)
	assert.Len(t, w2, 13)
	assert.Len(t, w3, 26)
}
