package coach

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

func mondayWindow(startMin, endMin int) schedule.TimeWindow {
	return schedule.TimeWindow{
		Start: schedule.At(2024, time.January, 15, startMin, time.UTC),
		End:   schedule.At(2024, time.January, 15, endMin, time.UTC),
	}
}

func TestFindSuggestionsNearestFirst(t *testing.T) {
	hours := club.DayHours{Open: "06:00", Close: "22:00"}
	courts := []CourtOption{{ID: "c1", Name: "Court 1"}}

	// Requested 10:00; coach busy 10:00-11:00. Nearest free starts outward
	// from 10:00 are 09:00 and 11:00 (60-minute step).
	got := findSuggestions(
		"2024-01-15", time.Monday, time.UTC, hours,
		mondayShift(), nil,
		[]schedule.TimeWindow{mondayWindow(10*60, 11*60)},
		courts,
		60, 60, 10*60, 2,
	)
	require.Len(t, got, 2)
	require.Equal(t, "09:00", got[0].Time)
	require.Equal(t, "11:00", got[1].Time)
	require.Equal(t, "c1", got[0].CourtID)
	require.Equal(t, "Court 1", got[0].CourtName)
}

func TestFindSuggestionsSkipsBusyCourts(t *testing.T) {
	hours := club.DayHours{Open: "09:00", Close: "12:00"}
	courts := []CourtOption{
		{ID: "c1", Name: "Court 1", Busy: []schedule.TimeWindow{mondayWindow(9*60, 12*60)}},
		{ID: "c2", Name: "Court 2", Busy: []schedule.TimeWindow{mondayWindow(9*60, 10*60)}},
	}

	got := findSuggestions(
		"2024-01-15", time.Monday, time.UTC, hours,
		mondayShift(), nil, nil, courts,
		60, 60, 9*60, 5,
	)

	// 09:00 only fits court 2's later gap; court 1 is blocked all morning.
	require.Len(t, got, 2)
	require.Equal(t, "10:00", got[0].Time)
	require.Equal(t, "c2", got[0].CourtID)
	require.Equal(t, "11:00", got[1].Time)
	require.Equal(t, "c2", got[1].CourtID)
}

func TestFindSuggestionsRespectsCoachAndClub(t *testing.T) {
	// Club closes at 11:00, trimming the coach's shift.
	hours := club.DayHours{Open: "09:00", Close: "11:00"}
	courts := []CourtOption{{ID: "c1", Name: "Court 1"}}

	st, et := "09:00", "10:00"
	timeOff := []TimeOff{{Date: "2024-01-15", StartTime: &st, EndTime: &et}}

	got := findSuggestions(
		"2024-01-15", time.Monday, time.UTC, hours,
		mondayShift(), timeOff, nil, courts,
		60, 30, 9*60, 10,
	)

	// Only 10:00-11:00 survives: earlier starts hit the time off, later
	// starts do not fit before closing.
	require.Len(t, got, 1)
	require.Equal(t, "10:00", got[0].Time)
}

func TestFindSuggestionsClosedDay(t *testing.T) {
	got := findSuggestions(
		"2024-01-15", time.Monday, time.UTC, club.DayHours{Closed: true},
		mondayShift(), nil, nil, []CourtOption{{ID: "c1"}},
		60, 30, 10*60, 5,
	)
	require.Empty(t, got)
}
