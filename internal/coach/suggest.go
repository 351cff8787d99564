package coach

import (
	"sort"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// Suggestion is an alternative slot where the coach and a court are both free.
type Suggestion struct {
	Date      string `json:"date"`
	Time      string `json:"time"` // "HH:MM" local start
	CourtID   string `json:"court_id"`
	CourtName string `json:"court_name"`
}

// CourtOption is a candidate court with its busy windows for one day,
// prepared by the caller from the booking store.
type CourtOption struct {
	ID   string
	Name string
	Busy []schedule.TimeWindow
}

// findSuggestions walks candidate start times on one local day and returns up
// to limit slots where the coach passes all bookability checks and at least
// one court is free. Candidates step across the coach's weekly slots clamped
// to the club's opening hours; they are visited outward from refMin so the
// nearest alternatives to the requested time come first.
func findSuggestions(
	date string,
	weekday time.Weekday,
	loc *time.Location,
	hours club.DayHours,
	weekly []WeeklySlot,
	timeOff []TimeOff,
	coachBusy []schedule.TimeWindow,
	courts []CourtOption,
	durationMin, stepMin, refMin, limit int,
) []Suggestion {
	if hours.Closed || limit <= 0 || stepMin <= 0 || durationMin <= 0 {
		return nil
	}

	year, month, day, err := schedule.ParseDate(date)
	if err != nil {
		return nil
	}
	openMin, err := schedule.ParseClock(hours.Open)
	if err != nil {
		return nil
	}
	closeMin, err := schedule.ParseClock(hours.Close)
	if err != nil {
		return nil
	}

	var candidates []int
	for _, slot := range weekly {
		if slot.DayOfWeek != int(weekday) {
			continue
		}
		lo, err1 := schedule.ParseClock(slot.StartTime)
		hi, err2 := schedule.ParseClock(slot.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if lo < openMin {
			lo = openMin
		}
		if hi > closeMin {
			hi = closeMin
		}
		for m := lo; m+durationMin <= hi; m += stepMin {
			candidates = append(candidates, m)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		di, dj := abs(candidates[i]-refMin), abs(candidates[j]-refMin)
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})

	var out []Suggestion
	for _, m := range candidates {
		q := BookingQuery{
			Date:       date,
			Weekday:    weekday,
			StartClock: schedule.FormatClock(m),
			EndClock:   schedule.FormatClock(m + durationMin),
			Window: schedule.TimeWindow{
				Start: schedule.At(year, month, day, m, loc),
				End:   schedule.At(year, month, day, m+durationMin, loc),
			},
		}
		if v := CheckBookable(q, weekly, timeOff, coachBusy); !v.OK {
			continue
		}
		for _, crt := range courts {
			if overlapsAny(q.Window, crt.Busy) {
				continue
			}
			out = append(out, Suggestion{
				Date:      date,
				Time:      q.StartClock,
				CourtID:   crt.ID,
				CourtName: crt.Name,
			})
			break
		}
		if len(out) >= limit {
			break
		}
	}
	return out
}

func overlapsAny(w schedule.TimeWindow, busy []schedule.TimeWindow) bool {
	for _, b := range busy {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
