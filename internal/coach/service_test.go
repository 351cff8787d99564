package coach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// Stubs embed the interfaces and override only what the suggestion search
// touches.

type stubRepo struct {
	Repository
	coach   *Coach
	weekly  []WeeklySlot
	timeOff map[string][]TimeOff
}

func (r *stubRepo) GetByID(_ context.Context, _ string) (*Coach, error) {
	return r.coach, nil
}

func (r *stubRepo) ListWeeklySlots(_ context.Context, _ string) ([]WeeklySlot, error) {
	return r.weekly, nil
}

func (r *stubRepo) ListTimeOff(_ context.Context, _ string, dates []string) ([]TimeOff, error) {
	var out []TimeOff
	for _, d := range dates {
		out = append(out, r.timeOff[d]...)
	}
	return out, nil
}

type stubClubService struct {
	club.Service
	hours map[string]club.DayHours
}

func (s *stubClubService) GetByID(_ context.Context, id string) (*club.Club, error) {
	return &club.Club{ID: id, Timezone: "Europe/Kyiv"}, nil
}

func (s *stubClubService) HoursForDate(_ context.Context, clubID, date string) (club.DayHours, *club.Club, error) {
	cl := &club.Club{ID: clubID, Timezone: "Europe/Kyiv"}
	if h, ok := s.hours[date]; ok {
		return h, cl, nil
	}
	return club.DayHours{Closed: true}, cl, nil
}

type stubCourtService struct {
	court.Service
}

func (s *stubCourtService) List(_ context.Context, _ court.Filter) ([]*court.Court, int, error) {
	return []*court.Court{{ID: "court-1", Name: "Court 1"}}, 1, nil
}

type stubCommitments struct{}

func (s *stubCommitments) CoachCommitments(_ context.Context, _ string, _ schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	return nil, nil
}

func (s *stubCommitments) CourtCommitments(_ context.Context, _ string, _ schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	return nil, nil
}

func newSuggestFixture(hours map[string]club.DayHours, weekly []WeeklySlot, timeOff map[string][]TimeOff) Service {
	repo := &stubRepo{
		coach:   &Coach{ID: "coach-1", ClubID: "club-1", DisplayName: "Olha"},
		weekly:  weekly,
		timeOff: timeOff,
	}
	return NewService(repo, &stubClubService{hours: hours}, &stubCourtService{}, &stubCommitments{})
}

func TestSuggestAlternativesRollsToNextOpenDay(t *testing.T) {
	// Requested Monday is closed; Tuesday opens 09:00-17:00 and the coach
	// works Tuesday mornings. Later days walk from opening, so the first
	// alternatives are Tuesday 09:00 then 09:30.
	hours := map[string]club.DayHours{
		"2024-01-16": {Open: "09:00", Close: "17:00"},
	}
	weekly := []WeeklySlot{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00"},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
	}
	svc := newSuggestFixture(hours, weekly, nil)

	out, err := svc.SuggestAlternatives(context.Background(), "coach-1", "2024-01-15", "14:00", 60, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "2024-01-16", out[0].Date)
	assert.Equal(t, "09:00", out[0].Time)
	assert.Equal(t, "court-1", out[0].CourtID)
	assert.Equal(t, "2024-01-16", out[1].Date)
	assert.Equal(t, "09:30", out[1].Time)
}

func TestSuggestAlternativesSkipsFullDayTimeOff(t *testing.T) {
	// Both days are open but the coach took Tuesday off entirely, so the
	// search keeps walking to Wednesday.
	hours := map[string]club.DayHours{
		"2024-01-16": {Open: "09:00", Close: "17:00"},
		"2024-01-17": {Open: "09:00", Close: "17:00"},
	}
	weekly := []WeeklySlot{
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00"},
	}
	timeOff := map[string][]TimeOff{
		"2024-01-16": {{Date: "2024-01-16", FullDay: true}},
	}
	svc := newSuggestFixture(hours, weekly, timeOff)

	out, err := svc.SuggestAlternatives(context.Background(), "coach-1", "2024-01-16", "09:00", 60, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-17", out[0].Date)
	assert.Equal(t, "09:00", out[0].Time)
}

func TestSuggestAlternativesEmptyBeyondHorizon(t *testing.T) {
	// Nothing open within the search horizon yields no suggestions rather
	// than an error.
	svc := newSuggestFixture(nil, []WeeklySlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}}, nil)

	out, err := svc.SuggestAlternatives(context.Background(), "coach-1", "2024-01-15", "10:00", 60, 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}
