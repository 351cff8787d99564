package schedule

import "time"

// TimeWindow is a half-open [Start, End) span in event time (UTC instants).
// The invariant Start < End is the caller's responsibility.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two windows share any instant. Touching endpoints
// do not overlap under half-open semantics.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Contains reports whether w fully covers inner.
func (w TimeWindow) Contains(inner TimeWindow) bool {
	return !w.Start.After(inner.Start) && !w.End.Before(inner.End)
}

// Duration returns the window's length.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Clip intersects w with bounds, returning the overlap and whether any exists.
func (w TimeWindow) Clip(bounds TimeWindow) (TimeWindow, bool) {
	if !w.Overlaps(bounds) {
		return TimeWindow{}, false
	}
	out := w
	if out.Start.Before(bounds.Start) {
		out.Start = bounds.Start
	}
	if out.End.After(bounds.End) {
		out.End = bounds.End
	}
	return out, true
}

// TimeStringOverlap applies half-open overlap to "HH:MM" day-local clock
// strings. Zero-padded 24-hour strings order correctly under lexical
// comparison, so no parsing is needed. No timezone conversion happens here;
// callers must normalize both windows to the same local day first.
func TimeStringOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// TimeStringContains reports whether the [outerStart, outerEnd) clock window
// fully covers [innerStart, innerEnd).
func TimeStringContains(outerStart, outerEnd, innerStart, innerEnd string) bool {
	return outerStart <= innerStart && outerEnd >= innerEnd
}
