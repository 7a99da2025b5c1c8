package frame_test

import (
	"github.com/Regentag/iridium-go/internal/burst"
	"github.com/Regentag/iridium-go/internal/classify"
	"github.com/Regentag/iridium-go/internal/frame"
)

// newTestFrame builds a bare ClassifiedFrame with just enough of Burst
// populated that pretty-printing and warning paths don't dereference nil.
func newTestFrame() *frame.ClassifiedFrame {
	f := &frame.ClassifiedFrame{}
	f.Burst = &burst.Burst{SourceName: "test.raw", OffsetMs: 0}
	f.Direction = classify.Downlink
	return f
}
