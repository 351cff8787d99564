package coach

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// ConflictReason is a machine-readable rejection code surfaced to clients.
type ConflictReason string

const (
	ReasonDoesNotWorkThisDay ConflictReason = "DOES_NOT_WORK_THIS_DAY"
	ReasonUnavailableOnDay   ConflictReason = "UNAVAILABLE_ON_DAY"
	ReasonNotAvailableAtTime ConflictReason = "NOT_AVAILABLE_AT_TIME"
	ReasonUnavailableAtTime  ConflictReason = "UNAVAILABLE_AT_TIME"
	ReasonAlreadyBooked      ConflictReason = "ALREADY_BOOKED"
	ReasonNoCourtAvailable   ConflictReason = "NO_COURT_AVAILABLE"
)

var reasonMessages = map[ConflictReason]string{
	ReasonDoesNotWorkThisDay: "coach does not work on this day of the week",
	ReasonUnavailableOnDay:   "coach is unavailable on this date",
	ReasonNotAvailableAtTime: "requested time is outside the coach's working hours",
	ReasonUnavailableAtTime:  "coach has time off during the requested time",
	ReasonAlreadyBooked:      "coach already has a training at this time",
	ReasonNoCourtAvailable:   "no court is available at the requested time",
}

// Message returns the human-readable counterpart of a reason code.
func (r ConflictReason) Message() string {
	return reasonMessages[r]
}

// Verdict is the outcome of a bookability check. Conflicts are first-class
// values, not errors: they are expected, frequent, and must carry a reason
// code for UI messaging.
type Verdict struct {
	OK          bool
	Reason      ConflictReason
	Message     string
	Suggestions []Suggestion
}

func reject(reason ConflictReason) Verdict {
	return Verdict{Reason: reason, Message: reason.Message()}
}

// BookingQuery is one candidate coach reservation, normalized by the caller
// to the club's timezone.
type BookingQuery struct {
	Date       string       // "YYYY-MM-DD" local calendar date
	Weekday    time.Weekday // weekday of Date in the club's zone
	StartClock string       // "HH:MM" local
	EndClock   string
	Window     schedule.TimeWindow // the same span as absolute instants
}

// CheckBookable decides whether a coach can take the queried reservation.
// The checks run in a fixed order and the first failure wins:
//
//  1. the coach works at all on that weekday
//  2. no full-day time off on the date
//  3. the requested clock window sits inside one weekly working slot
//  4. no partial time off overlaps the requested clock window
//  5. no existing commitment overlaps the requested instant window
func CheckBookable(q BookingQuery, weekly []WeeklySlot, timeOff []TimeOff, commitments []schedule.TimeWindow) Verdict {
	worksToday := false
	for _, slot := range weekly {
		if slot.DayOfWeek == int(q.Weekday) {
			worksToday = true
			break
		}
	}
	if !worksToday {
		return reject(ReasonDoesNotWorkThisDay)
	}

	// Full-day time off beats working-hours containment: "on vacation" is a
	// better answer than "outside working hours".
	for _, off := range timeOff {
		if off.Date == q.Date && off.FullDay {
			return reject(ReasonUnavailableOnDay)
		}
	}

	inWorkingHours := false
	for _, slot := range weekly {
		if slot.DayOfWeek != int(q.Weekday) {
			continue
		}
		if schedule.TimeStringContains(slot.StartTime, slot.EndTime, q.StartClock, q.EndClock) {
			inWorkingHours = true
			break
		}
	}
	if !inWorkingHours {
		return reject(ReasonNotAvailableAtTime)
	}

	for _, off := range timeOff {
		if off.Date != q.Date || off.FullDay {
			continue
		}
		if off.StartTime == nil || off.EndTime == nil {
			continue
		}
		if schedule.TimeStringOverlap(*off.StartTime, *off.EndTime, q.StartClock, q.EndClock) {
			return reject(ReasonUnavailableAtTime)
		}
	}

	for _, busy := range commitments {
		if busy.Overlaps(q.Window) {
			return reject(ReasonAlreadyBooked)
		}
	}

	return Verdict{OK: true}
}
