package decodeerr_test

import (
	"testing"

	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/stretchr/testify/assert"
)

func TestErrorWithDetail(t *testing.T) {
	err := decodeerr.New("classify", decodeerr.UnknownType, "no syndrome matched")
	assert.Equal(t, "classify:UnknownType:no syndrome matched", err.Error())
}

func TestErrorWithoutDetail(t *testing.T) {
	err := decodeerr.New("burst", decodeerr.ParseError, "")
	assert.Equal(t, "burst:ParseError", err.Error())
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = decodeerr.New("frame", decodeerr.CRCFail, "mismatch")
	assert.EqualError(t, err, "frame:CRCFail:mismatch")
}
