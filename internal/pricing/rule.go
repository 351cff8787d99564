package pricing

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// Rule is a day-of-week scoped price override for a court. A court also has a
// default price that applies when no rule matches.
type Rule struct {
	ID         string
	CourtID    string
	DayOfWeek  int    // 0=Sunday .. 6=Saturday
	StartTime  string // "HH:MM", inclusive
	EndTime    string // "HH:MM", exclusive
	PriceCents int64
	CreatedAt  time.Time
}

// valid reports whether the rule row is well formed. Broken rows are excluded
// from matching so one bad row cannot take down a whole day's pricing.
func (r Rule) valid() bool {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 || r.PriceCents < 0 {
		return false
	}
	if _, err := schedule.ParseClock(r.StartTime); err != nil {
		return false
	}
	if _, err := schedule.ParseClock(r.EndTime); err != nil {
		return false
	}
	return r.StartTime < r.EndTime
}

// spanMinutes returns the rule window's width. Only called on valid rules.
func (r Rule) spanMinutes() int {
	start, _ := schedule.ParseClock(r.StartTime)
	end, _ := schedule.ParseClock(r.EndTime)
	return end - start
}

// Resolve picks the price in cents for a slot on the given local weekday with
// the given local time-of-day bounds. A rule is a candidate when its weekday
// matches and its window fully contains the slot. When several candidates
// match, the narrowest window wins; among equal widths the later start time
// wins, so the most specific rule always takes precedence. With no candidate
// the court's default price applies.
func Resolve(rules []Rule, defaultPriceCents int64, weekday time.Weekday, slotStart, slotEnd string) int64 {
	best := -1
	for i, r := range rules {
		if !r.valid() {
			continue
		}
		if r.DayOfWeek != int(weekday) {
			continue
		}
		if !schedule.TimeStringContains(r.StartTime, r.EndTime, slotStart, slotEnd) {
			continue
		}
		if best < 0 || moreSpecific(r, rules[best]) {
			best = i
		}
	}

	if best < 0 {
		return defaultPriceCents
	}
	return rules[best].PriceCents
}

// ResolveForWindow derives the local weekday and clock bounds of an absolute
// window in loc and resolves its price. The weekday is taken from the slot's
// start instant.
func ResolveForWindow(rules []Rule, defaultPriceCents int64, w schedule.TimeWindow, loc *time.Location) int64 {
	start := w.Start.In(loc)
	end := w.End.In(loc)
	return Resolve(rules, defaultPriceCents, start.Weekday(),
		schedule.FormatClock(start.Hour()*60+start.Minute()),
		schedule.FormatClock(end.Hour()*60+end.Minute()))
}

func moreSpecific(a, b Rule) bool {
	as, bs := a.spanMinutes(), b.spanMinutes()
	if as != bs {
		return as < bs
	}
	return a.StartTime > b.StartTime
}
