// Package frame implements §3 (ClassifiedFrame), §4.3 (per-variant field
// decoders) and the LW dispatch table of spec.md: turning a classified
// burst payload into a structured record, or as much of one as survives a
// mid-pipeline failure.
package frame

import (
	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/decodeerr"
)

// Tag is the final, user-facing frame classification: the top-level type
// from classify.Type, narrowed further for LW's dispatch (VO/IP/DA/SY/
// U3/U6/Ux) and for MS/VO/IP's outcome-dependent sub-labels
// (ASCII/Unknown, VO6/VOD/VOC, IIP/IIQ/IIR/IIU).
type Tag string

const (
	TagMS      Tag = "MS"
	TagASCII   Tag = "ASCII"
	TagMS3     Tag = "MS3"
	TagTL      Tag = "TL"
	TagBC      Tag = "BC"
	TagRA      Tag = "RA"
	TagLW      Tag = "LW"
	TagVO      Tag = "VO"
	TagVDA     Tag = "VDA"
	TagVO6     Tag = "VO6"
	TagVOD     Tag = "VOD"
	TagVOC     Tag = "VOC"
	TagIP      Tag = "IP"
	TagIIP     Tag = "IIP"
	TagIIQ     Tag = "IIQ"
	TagIIR     Tag = "IIR"
	TagIIU     Tag = "IIU"
	TagDA      Tag = "DA"
	TagSY      Tag = "SY"
	TagU3      Tag = "U3"
	TagI38     Tag = "I38"
	TagI36     Tag = "I36"
	TagU6      Tag = "U6"
	TagUx      Tag = "Ux"
	TagUnknown Tag = "UNK"
)

// Common holds the fields every ClassifiedFrame carries regardless of
// variant (spec.md §3).
type Common struct {
	Burst       *burst.Burst
	GlobalTime  float64
	Direction   classify.Direction
	PayloadBits string // after access-code strip
	HeaderBits  string

	DescrambledBlocks []string // ordered de-interleaved blocks
	DescrambleExtra   string   // remainder after full blocks
	FixedErrors       int      // sum of nonzero codec corrections
	LeadOutOk         bool

	ECUW           int // access-code UW correction count, 0 if not applicable
	LCWRepairCount int // LW field repair count, 0 if not applicable

	ErrorLog []*decodeerr.Error
	Warnings []string
}

// AddError appends to the error log (append-only, per spec.md §3
// Lifecycle). It returns nothing; callers return separately.
func (c *Common) AddError(e *decodeerr.Error) {
	c.ErrorLog = append(c.ErrorLog, e)
}

// AddWarning appends a non-fatal note (spec.md §9: ip_len>31 etc.) that
// does not set IsError.
func (c *Common) AddWarning(w string) {
	c.Warnings = append(c.Warnings, w)
}

// IsError reports whether any stage recorded a failure.
func (c *Common) IsError() bool {
	return len(c.ErrorLog) > 0
}

// ClassifiedFrame is the tagged variant spec.md §3/§9 describes: one Tag
// plus the shared Common fields, plus the variant payload Tag selects. An
// LW-dispatched frame carries LW alongside its dispatch target (VO, IP,
// DA, ...); a frame whose decoding stopped early may carry none. Built once from a Burst by Decode and never mutated
// externally (besides the append-only ErrorLog/Warnings during
// construction).
type ClassifiedFrame struct {
	Common
	Tag Tag

	MS *MSFields
	TL *TLFields
	BC *BCFields
	RA *RAFields
	LW *LWFields
	VO *VOFields
	IP *IPFields
	DA *DAFields
	SY *SYFields
	U3 *U3Fields
	U6 *U6Fields
	Ux *UxFields
}

func newFrame(b *burst.Burst, dir classify.Direction, payload bitutils, globalTime float64) *ClassifiedFrame {
	return &ClassifiedFrame{
		Common: Common{
			Burst:       b,
			GlobalTime:  globalTime,
			Direction:   dir,
			PayloadBits: string(payload),
		},
	}
}

// bitutils is a local alias so common.go doesn't need to import bitutil
// just for this one constructor parameter's type.
type bitutils = string
