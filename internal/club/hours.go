package club

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// DayHours is the resolved opening window for one calendar date.
// When Closed is true the clock fields are empty.
type DayHours struct {
	Open   string // "HH:MM"
	Close  string
	Closed bool
}

var closedDay = DayHours{Closed: true}

// EffectiveHours resolves the opening window for a date: an exception with the
// exact date wins over the weekly rule for the date's weekday; a missing rule
// means the club is closed that day. Malformed rows also resolve as closed
// rather than erroring, so one bad row cannot break an otherwise healthy day.
func EffectiveHours(date string, weekday time.Weekday, weekly []BusinessHourRule, exceptions []SpecialHourException) DayHours {
	for _, ex := range exceptions {
		if ex.Date != date {
			continue
		}
		if ex.IsClosed {
			return closedDay
		}
		return hoursFrom(ex.OpenTime, ex.CloseTime)
	}

	for _, rule := range weekly {
		if rule.DayOfWeek != int(weekday) {
			continue
		}
		if rule.IsClosed {
			return closedDay
		}
		return hoursFrom(rule.OpenTime, rule.CloseTime)
	}

	return closedDay
}

// hoursFrom validates the stored clock strings, failing closed on bad data.
func hoursFrom(open, close *string) DayHours {
	if open == nil || close == nil {
		return closedDay
	}
	if _, err := schedule.ParseClock(*open); err != nil {
		return closedDay
	}
	if _, err := schedule.ParseClock(*close); err != nil {
		return closedDay
	}
	if *open >= *close {
		return closedDay
	}
	return DayHours{Open: *open, Close: *close}
}
