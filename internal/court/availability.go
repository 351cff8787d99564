package court

import (
	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// SlotStatus tags one grid slot in a day's availability view.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available" // no active booking touches the slot
	SlotBooked    SlotStatus = "booked"    // an active booking fully covers the slot
	SlotPartial   SlotStatus = "partial"   // active booking(s) cover only part of the slot
)

// Slot is one fixed-width candidate window within a day.
type Slot struct {
	Window schedule.TimeWindow
	Status SlotStatus
}

// DaySlots builds the availability grid for one local calendar day of a court.
// hours is the club's resolved opening window for the date (closed ⇒ empty
// grid), busy is the set of active booking windows for the court on that day,
// and granularityMinutes is the slot width. Slots are grid-aligned from the
// opening time; a trailing remainder shorter than one slot is not produced.
//
// Slot bounds are computed on the club's local wall clock, so grids stay
// aligned to local opening hours even when a DST transition falls on the date.
func DaySlots(date, timezone string, hours club.DayHours, busy []schedule.TimeWindow, granularityMinutes int) ([]Slot, error) {
	if granularityMinutes <= 0 {
		return nil, ErrInvalidGranularity
	}
	if hours.Closed {
		return nil, nil
	}

	year, month, day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	loc, err := schedule.LoadTimezone(timezone)
	if err != nil {
		return nil, err
	}

	openMin, err := schedule.ParseClock(hours.Open)
	if err != nil {
		return nil, err
	}
	closeMin, err := schedule.ParseClock(hours.Close)
	if err != nil {
		return nil, err
	}

	var slots []Slot
	for m := openMin; m+granularityMinutes <= closeMin; m += granularityMinutes {
		w := schedule.TimeWindow{
			Start: schedule.At(year, month, day, m, loc),
			End:   schedule.At(year, month, day, m+granularityMinutes, loc),
		}
		slots = append(slots, Slot{Window: w, Status: classify(w, busy)})
	}
	return slots, nil
}

// classify scans the busy windows overlapping a slot. A single full cover
// makes it booked regardless of other partial overlaps; booked dominates.
func classify(slot schedule.TimeWindow, busy []schedule.TimeWindow) SlotStatus {
	status := SlotAvailable
	for _, b := range busy {
		if !b.Overlaps(slot) {
			continue
		}
		if b.Contains(slot) {
			return SlotBooked
		}
		status = SlotPartial
	}
	return status
}
