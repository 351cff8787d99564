package coach

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// 2024-01-15 is a Monday.
func mondayQuery(startClock, endClock string) BookingQuery {
	start, _ := schedule.ParseClock(startClock)
	end, _ := schedule.ParseClock(endClock)
	return BookingQuery{
		Date:       "2024-01-15",
		Weekday:    time.Monday,
		StartClock: startClock,
		EndClock:   endClock,
		Window: schedule.TimeWindow{
			Start: schedule.At(2024, time.January, 15, start, time.UTC),
			End:   schedule.At(2024, time.January, 15, end, time.UTC),
		},
	}
}

func mondayShift() []WeeklySlot {
	return []WeeklySlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"}}
}

func TestCheckBookableSuccess(t *testing.T) {
	// Coach works Monday 09:00-18:00, no time off, no trainings.
	v := CheckBookable(mondayQuery("10:00", "11:00"), mondayShift(), nil, nil)
	require.True(t, v.OK)
	require.Empty(t, v.Reason)
}

func TestCheckBookableDoesNotWorkThisDay(t *testing.T) {
	weekly := []WeeklySlot{{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"}}
	v := CheckBookable(mondayQuery("10:00", "11:00"), weekly, nil, nil)
	require.False(t, v.OK)
	require.Equal(t, ReasonDoesNotWorkThisDay, v.Reason)
	require.NotEmpty(t, v.Message)
}

func TestCheckBookableFullDayTimeOffPrecedesHours(t *testing.T) {
	// Full-day time off on a working Monday: the rejection must be
	// UNAVAILABLE_ON_DAY even though 10:00 is inside working hours.
	timeOff := []TimeOff{{Date: "2024-01-15", FullDay: true}}
	v := CheckBookable(mondayQuery("10:00", "11:00"), mondayShift(), timeOff, nil)
	require.False(t, v.OK)
	require.Equal(t, ReasonUnavailableOnDay, v.Reason)

	// And also when the requested time is outside working hours: the
	// full-day check still wins because it runs first.
	v = CheckBookable(mondayQuery("07:00", "08:00"), mondayShift(), timeOff, nil)
	require.Equal(t, ReasonUnavailableOnDay, v.Reason)

	// Full-day entries on other dates are ignored.
	otherDay := []TimeOff{{Date: "2024-01-16", FullDay: true}}
	v = CheckBookable(mondayQuery("10:00", "11:00"), mondayShift(), otherDay, nil)
	require.True(t, v.OK)
}

func TestCheckBookableOutsideWorkingHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"before shift", "07:00", "08:00"},
		{"straddles start", "08:30", "09:30"},
		{"straddles end", "17:30", "18:30"},
		{"after shift", "19:00", "20:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CheckBookable(mondayQuery(tt.start, tt.end), mondayShift(), nil, nil)
			require.Equal(t, ReasonNotAvailableAtTime, v.Reason)
		})
	}

	// A split shift: containment can be satisfied by either slot.
	split := []WeeklySlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"},
	}
	v := CheckBookable(mondayQuery("15:00", "16:00"), split, nil, nil)
	require.True(t, v.OK)
	v = CheckBookable(mondayQuery("12:00", "14:00"), split, nil, nil)
	require.Equal(t, ReasonNotAvailableAtTime, v.Reason)
}

func TestCheckBookablePartialTimeOff(t *testing.T) {
	st, et := "12:00", "14:00"
	timeOff := []TimeOff{{Date: "2024-01-15", StartTime: &st, EndTime: &et}}

	v := CheckBookable(mondayQuery("13:00", "14:00"), mondayShift(), timeOff, nil)
	require.Equal(t, ReasonUnavailableAtTime, v.Reason)

	// Touching the blackout boundary is fine under half-open semantics.
	v = CheckBookable(mondayQuery("14:00", "15:00"), mondayShift(), timeOff, nil)
	require.True(t, v.OK)

	// Malformed partial entries (missing bounds) are skipped, not fatal.
	broken := []TimeOff{{Date: "2024-01-15"}}
	v = CheckBookable(mondayQuery("13:00", "14:00"), mondayShift(), broken, nil)
	require.True(t, v.OK)
}

func TestCheckBookableExistingCommitment(t *testing.T) {
	busy := []schedule.TimeWindow{{
		Start: schedule.At(2024, time.January, 15, 10*60, time.UTC),
		End:   schedule.At(2024, time.January, 15, 11*60, time.UTC),
	}}

	v := CheckBookable(mondayQuery("10:30", "11:30"), mondayShift(), nil, busy)
	require.Equal(t, ReasonAlreadyBooked, v.Reason)

	// Back-to-back trainings are allowed.
	v = CheckBookable(mondayQuery("11:00", "12:00"), mondayShift(), nil, busy)
	require.True(t, v.OK)
}

func TestCheckBookableOrderShortCircuits(t *testing.T) {
	// Everything is wrong at once: no weekly slot for Monday wins over the
	// full-day time off because the weekday check runs first.
	weekly := []WeeklySlot{{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"}}
	timeOff := []TimeOff{{Date: "2024-01-15", FullDay: true}}
	busy := []schedule.TimeWindow{mondayQuery("10:00", "11:00").Window}

	v := CheckBookable(mondayQuery("10:00", "11:00"), weekly, timeOff, busy)
	require.Equal(t, ReasonDoesNotWorkThisDay, v.Reason)
}
