package codec_test

import (
	"strings"
	"testing"

	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/stretchr/testify/assert"
)

func TestDivideAllZeroIsAlwaysACodeword(t *testing.T) {
	assert.Equal(t, 0, codec.Divide(29, strings.Repeat("0", 31)))
}

func TestDivideDetectsNonCodeword(t *testing.T) {
	bits := "1" + strings.Repeat("0", 30)
	assert.NotEqual(t, 0, codec.Divide(29, bits))
}

func TestRepairAllZeroNeedsNoCorrection(t *testing.T) {
	errs, data, bch := codec.Repair(29, strings.Repeat("0", 31))
	assert.Equal(t, 0, errs)
	assert.Equal(t, strings.Repeat("0", 27), data)
	assert.Equal(t, strings.Repeat("0", 4), bch)
}

func TestRepairSingleBitFlip(t *testing.T) {
	bits := []byte(strings.Repeat("0", 31))
	bits[5] = '1'
	errs, _, _ := codec.Repair(29, string(bits))
	assert.Equal(t, 1, errs)
}

func TestRepairWidthAllZero(t *testing.T) {
	errs, data, bch := codec.RepairWidth(29, strings.Repeat("0", 31), 20)
	assert.Equal(t, 0, errs)
	assert.Equal(t, strings.Repeat("0", 20), data)
	assert.Equal(t, strings.Repeat("0", 11), bch)
}
