// Package timing derives the per-burst GlobalTime (spec.md §3, §4.6) from
// a Burst's SourceName/OffsetMs and keeps the small per-run state needed to
// make it monotone across a run.
package timing

import (
	"regexp"
	"strconv"
)

var (
	// DD-MM-YYYY-HH-MM-SS-...
	datePattern = regexp.MustCompile(`(\d{2})-(\d{2})-(\d{4})-(\d{2})-(\d{2})-(\d{2})`)
	// i-<float>-...-[vbsrtl]1.<two-letter-suffix>
	iTimeSuffixPattern = regexp.MustCompile(`i-([0-9]+(?:\.[0-9]+)?)-.*[vbsrtl]1\.([a-z])([a-z])`)
	// i-<float>-[vbsrtl]1(-o±N)?
	iTimePattern = regexp.MustCompile(`i-([0-9]+(?:\.[0-9]+)?)-[vbsrtl]1(?:-o(-?[0-9]+))?`)
)

// daysToUnix converts a DD-MM-YYYY-HH-MM-SS capture to a Unix timestamp,
// without relying on time.Parse's locale/timezone machinery (the source
// names are UTC wall-clock captures).
func daysToUnix(dd, mm, yyyy, hh, mi, ss int) float64 {
	// Days since epoch via a civil-calendar algorithm (Howard Hinnant's
	// days_from_civil), so we don't need the stdlib's monotonic clock or
	// local timezone database.
	y := yyyy
	if mm <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	mp := (mm + 9) % 12
	doy := (153*mp+2)/5 + dd - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	days := era*146097 + doe - 719468

	return float64(days*86400 + hh*3600 + mi*60 + ss)
}

// baseTime extracts the base Unix time from a burst's source name,
// returning ok=false when none of the known patterns match (spec.md
// §4.6's "otherwise a running offset is used" branch).
func baseTime(sourceName string) (float64, bool) {
	if m := datePattern.FindStringSubmatch(sourceName); m != nil {
		dd, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		yyyy, _ := strconv.Atoi(m[3])
		hh, _ := strconv.Atoi(m[4])
		mi, _ := strconv.Atoi(m[5])
		ss, _ := strconv.Atoi(m[6])
		return daysToUnix(dd, mm, yyyy, hh, mi, ss), true
	}

	if m := iTimeSuffixPattern.FindStringSubmatch(sourceName); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err == nil && len(m[2]) == 1 && len(m[3]) == 1 {
			b26 := float64(int(m[2][0]-'a')*26+int(m[3][0]-'a')) * 600
			return f + b26, true
		}
	}

	if m := iTimePattern.FindStringSubmatch(sourceName); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return f, true
		}
	}

	return 0, false
}

// Context carries the two scalars spec.md §5/§9 require be run-scoped, not
// process-global: the running fallback offset and the last emitted
// global time, used to keep GlobalTime monotone non-decreasing across one
// run (spec.md §4.6, §8).
type Context struct {
	tsOffset float64
	lastTime float64
	started  bool
}

// NewContext returns a fresh per-run timing context.
func NewContext() *Context {
	return &Context{}
}

// GlobalTime derives the burst's global timestamp and folds it into the
// run's monotone sequence, advancing tsOffset if necessary so the result
// never regresses relative to the previous call.
func (c *Context) GlobalTime(sourceName string, offsetMs int64) float64 {
	base, ok := baseTime(sourceName)
	if !ok {
		base = c.tsOffset
	}

	t := base + float64(offsetMs)/1000.0

	if c.started && t < c.lastTime {
		c.tsOffset += c.lastTime - t
		t = c.lastTime
	}

	c.lastTime = t
	c.started = true
	return t
}
