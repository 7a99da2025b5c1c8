package frame

import (
	"github.com/Regentag/iridium-go/internal/bitutil"
	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/decodeerr"
	"github.com/Regentag/iridium-go/internal/timing"
)

// Options configures the optional, more expensive repair attempts
// spec.md §4.1/§4.2 describe: UW correction on the access code, and the
// "harder" BC/LW repair-then-classify path. A type filter short-circuits
// decoding of excluded variants with FilteredType (spec.md §7).
type Options struct {
	CorrectUW  bool
	Harder     bool
	TypeFilter map[classify.Type]bool // nil or empty = no filtering
}

func (o Options) filtered(t classify.Type) bool {
	if len(o.TypeFilter) == 0 {
		return false
	}
	return !o.TypeFilter[t]
}

// Decode builds a ClassifiedFrame from one Burst. It never panics and
// never returns a nil frame: every stage that fails appends to ErrorLog
// and returns whatever was decoded so far (spec.md §7 propagation policy).
func Decode(b *burst.Burst, opts Options, tctx *timing.Context) *ClassifiedFrame {
	gt := tctx.GlobalTime(b.SourceName, b.OffsetMs)

	symbols := b.Symbols
	if b.Swapped {
		symbols = bitutil.SymbolReverse(symbols)
	}

	dir, payload, ecUW, err := classify.DetectDirection(symbols, opts.CorrectUW)
	if err != nil {
		f := newFrame(b, "", "", gt)
		f.AddError(err.(*decodeerr.Error))
		return f
	}

	f := newFrame(b, dir, payload, gt)
	f.ECUW = ecUW

	result, err := classify.Classify(payload, opts.Harder)
	if err != nil {
		f.AddError(err.(*decodeerr.Error))
		return f
	}

	if opts.filtered(result.Type) {
		f.AddError(decodeerr.New("classify", decodeerr.FilteredType, string(result.Type)))
		return f
	}

	switch result.Type {
	case classify.TypeMS:
		decodeMS(f, payload)
	case classify.TypeTL:
		decodeTL(f, payload)
	case classify.TypeBC:
		decodeBC(f, payload, opts.Harder)
	case classify.TypeLW:
		decodeLW(f, payload, opts.Harder)
	case classify.TypeRA:
		decodeRA(f, payload)
	}

	return f
}
