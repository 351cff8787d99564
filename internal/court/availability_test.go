package court

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// 2024-01-15 is a Monday.
const monday = "2024-01-15"

func utcWin(startHour, startMin, endHour, endMin int) schedule.TimeWindow {
	return schedule.TimeWindow{
		Start: time.Date(2024, 1, 15, startHour, startMin, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 15, endHour, endMin, 0, 0, time.UTC),
	}
}

func TestDaySlotsClosedDay(t *testing.T) {
	slots, err := DaySlots(monday, "UTC", club.DayHours{Closed: true}, nil, 60)
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestDaySlotsGrid(t *testing.T) {
	hours := club.DayHours{Open: "06:00", Close: "22:00"}

	slots, err := DaySlots(monday, "UTC", hours, nil, 60)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	require.Equal(t, utcWin(6, 0, 7, 0), slots[0].Window)
	require.Equal(t, utcWin(21, 0, 22, 0), slots[15].Window)
	for _, s := range slots {
		require.Equal(t, SlotAvailable, s.Status)
	}

	// A remainder shorter than one slot is dropped: 06:00-22:30 at 60min
	// still yields 16 slots.
	slots, err = DaySlots(monday, "UTC", club.DayHours{Open: "06:00", Close: "22:30"}, nil, 60)
	require.NoError(t, err)
	require.Len(t, slots, 16)
}

func TestDaySlotsStatuses(t *testing.T) {
	hours := club.DayHours{Open: "06:00", Close: "22:00"}
	busy := []schedule.TimeWindow{utcWin(17, 0, 18, 0)}

	slots, err := DaySlots(monday, "UTC", hours, busy, 60)
	require.NoError(t, err)

	byStart := map[string]SlotStatus{}
	for _, s := range slots {
		byStart[s.Window.Start.Format("15:04")] = s.Status
	}

	require.Equal(t, SlotAvailable, byStart["16:00"], "touching slot before the booking stays free")
	require.Equal(t, SlotBooked, byStart["17:00"])
	require.Equal(t, SlotAvailable, byStart["18:00"], "touching slot after the booking stays free")
}

func TestDaySlotsPartialAndDominance(t *testing.T) {
	hours := club.DayHours{Open: "09:00", Close: "12:00"}

	// A half-hour booking makes its hour slot partial.
	busy := []schedule.TimeWindow{utcWin(9, 30, 10, 0)}
	slots, err := DaySlots(monday, "UTC", hours, busy, 60)
	require.NoError(t, err)
	require.Equal(t, SlotPartial, slots[0].Status)
	require.Equal(t, SlotAvailable, slots[1].Status)

	// A full cover plus a partial overlap on the same slot: booked dominates.
	busy = []schedule.TimeWindow{
		utcWin(9, 30, 10, 0),
		utcWin(9, 0, 10, 0),
	}
	slots, err = DaySlots(monday, "UTC", hours, busy, 60)
	require.NoError(t, err)
	require.Equal(t, SlotBooked, slots[0].Status)

	// A booking spanning several slots fully covers each of them.
	busy = []schedule.TimeWindow{utcWin(9, 0, 11, 0)}
	slots, err = DaySlots(monday, "UTC", hours, busy, 60)
	require.NoError(t, err)
	require.Equal(t, SlotBooked, slots[0].Status)
	require.Equal(t, SlotBooked, slots[1].Status)
	require.Equal(t, SlotAvailable, slots[2].Status)
}

func TestDaySlotsLocalTimezone(t *testing.T) {
	// Kyiv winter is UTC+2: an 08:00 local opening is 06:00 UTC.
	hours := club.DayHours{Open: "08:00", Close: "10:00"}
	slots, err := DaySlots(monday, "Europe/Kyiv", hours, nil, 60)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	require.Equal(t, time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC), slots[0].Window.Start.UTC())
}

func TestDaySlotsValidation(t *testing.T) {
	hours := club.DayHours{Open: "09:00", Close: "18:00"}

	_, err := DaySlots(monday, "UTC", hours, nil, 0)
	require.ErrorIs(t, err, ErrInvalidGranularity)

	_, err = DaySlots("2024-02-30", "UTC", hours, nil, 60)
	require.ErrorIs(t, err, schedule.ErrInvalidDateValues)

	_, err = DaySlots(monday, "UTC+2", hours, nil, 60)
	require.ErrorIs(t, err, schedule.ErrInvalidTimezone)
}
