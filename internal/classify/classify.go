// Package classify implements §4.1 (access-code detection/direction) and
// §4.2 (burst-type discrimination) of spec.md: turning a post-access-code
// payload into one of the top-level frame types by checking, in order,
// which fixed header or de-interleaved BCH syndromes vanish.
package classify

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/codec"
	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/Regentag/iridium-go/internal/interleave"
)

// Type is the top-level burst classification, spec.md §4.2.
type Type string

const (
	TypeMS      Type = "MS"
	TypeTL      Type = "TL"
	TypeBC      Type = "BC"
	TypeLW      Type = "LW"
	TypeRA      Type = "RA"
	TypeUnknown Type = "U"
)

const (
	messagingHeader = "00110011111100110011001111110011"
	headerPoly      = 29
	lwPoly1         = 29
	lwPoly2         = 465
	lwPoly3         = 41
	ringAlertPoly   = 1207
)

// Result carries the outcome of classification: the assigned Type only.
// Intermediate de-interleaving/BCH results are not kept; the frame
// decoders recompute what they need.
type Result struct {
	Type Type
}

// Classify assigns a top-level type to payload (the bits following the
// access code), per spec.md §4.2's ordered predicate cascade. harder
// enables step 6: BC/LW are retried with one-error BCH repair plus an
// even-parity check that the ordinary path skips.
func Classify(payload bitutil.Bits, harder bool) (Result, error) {
	if len(payload) < 64 {
		return Result{}, decodeerr.New("classify", decodeerr.MessageTooShort, "payload shorter than 64 bits")
	}

	if len(payload) >= 32 && payload[:32] == messagingHeader {
		return Result{Type: TypeMS}, nil
	}

	if len(payload) >= 96 && payload[:2] == "11" && bitutil.AllZero(payload[2:96]) {
		return Result{Type: TypeTL}, nil
	}

	if isBC(payload, harder) {
		return Result{Type: TypeBC}, nil
	}

	if isLW(payload, harder) {
		return Result{Type: TypeLW}, nil
	}

	if isRA(payload) {
		return Result{Type: TypeRA}, nil
	}

	return Result{}, decodeerr.New("classify", decodeerr.UnknownType, "no burst type syndrome matched")
}

func isBC(payload bitutil.Bits, harder bool) bool {
	if len(payload) < 70 {
		return false
	}
	if codec.Divide(headerPoly, payload[:6]) != 0 {
		return false
	}
	half1, half2 := interleave.TwoWay(payload[6:70])
	if len(half1) < 31 || len(half2) < 31 {
		return false
	}

	if codec.Divide(ringAlertPoly, half1[:31]) == 0 && codec.Divide(ringAlertPoly, half2[:31]) == 0 {
		return true
	}
	if !harder {
		return false
	}

	return bchOKWithParity(ringAlertPoly, half1) && bchOKWithParity(ringAlertPoly, half2)
}

func isLW(payload bitutil.Bits, harder bool) bool {
	if len(payload) < 46 {
		return false
	}
	w1, w2, w3 := interleave.LCW(payload[:46])

	if !harder {
		ok1 := codec.Divide(lwPoly1, w1) == 0
		ok3 := codec.Divide(lwPoly3, w3) == 0
		ok2 := codec.Divide(lwPoly2, w2+"0") == 0 || codec.Divide(lwPoly2, w2+"1") == 0
		return ok1 && ok2 && ok3
	}

	ok1 := bchRepairableOne(lwPoly1, w1)
	ok3 := bchRepairableOne(lwPoly3, w3)
	ok2 := bchRepairableOne(lwPoly2, w2+"0") || bchRepairableOne(lwPoly2, w2+"1")
	return ok1 && ok2 && ok3
}

func isRA(payload bitutil.Bits) bool {
	if len(payload) < 96 {
		return false
	}
	first, second, third := interleave.ThreeWay(payload[:96])
	if len(first) < 31 || len(second) < 31 || len(third) < 31 {
		return false
	}
	return codec.Divide(ringAlertPoly, first[:31]) == 0 &&
		codec.Divide(ringAlertPoly, second[:31]) == 0 &&
		codec.Divide(ringAlertPoly, third[:31]) == 0
}

// bchOKWithParity is the "harder" BC path (spec.md §9 Open Questions):
// one-error BCH repair allowed, plus an even-parity check over
// data‖bch‖parity_bit that the ordinary path never performs.
func bchOKWithParity(poly int, bits bitutil.Bits) bool {
	if len(bits) < 32 {
		return false
	}
	errs, data, bch := codec.Repair(poly, bits[:31])
	if errs < 0 || errs > 1 {
		return false
	}
	parityBit := bits[31]
	return bitutil.Parity(data+bch) == parityBit
}

func bchRepairableOne(poly int, bits bitutil.Bits) bool {
	errs, _, _ := codec.Repair(poly, bits)
	return errs >= 0 && errs <= 1
}
