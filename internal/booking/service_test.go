package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/coach"
	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int
	overlap  bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*Booking{}}
}

func (r *fakeRepo) Create(_ context.Context, b *Booking) error {
	r.nextID++
	b.ID = string(rune('a' + r.nextID - 1))
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) Update(_ context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) HasOverlap(_ context.Context, _ string, _, _ time.Time, _ string) (bool, error) {
	return r.overlap, nil
}

func (r *fakeRepo) CourtCommitments(_ context.Context, _ string, _ schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	return nil, nil
}

func (r *fakeRepo) CoachCommitments(_ context.Context, _ string, _ schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	return nil, nil
}

func (r *fakeRepo) CancelExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeRepo) CompletePast(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

// Stubs embed the service interface and override only what the flow touches.

type stubCourtService struct {
	court.Service
	quote int64
}

func (s *stubCourtService) GetByID(_ context.Context, id string) (*court.Court, error) {
	return &court.Court{ID: id, ClubID: "club-1", Name: "Court 1"}, nil
}

func (s *stubCourtService) Quote(_ context.Context, _ string, _ schedule.TimeWindow) (int64, error) {
	return s.quote, nil
}

type stubCoachService struct {
	coach.Service
	verdict     coach.Verdict
	suggestions []coach.Suggestion
	rateCents   int64
}

func (s *stubCoachService) GetByID(_ context.Context, id string) (*coach.Coach, error) {
	return &coach.Coach{ID: id, ClubID: "club-1", HourlyRateCents: s.rateCents}, nil
}

func (s *stubCoachService) CheckBooking(_ context.Context, _, _, _ string, _ int) (coach.Verdict, error) {
	return s.verdict, nil
}

func (s *stubCoachService) SuggestAlternatives(_ context.Context, _, _, _ string, _, _ int) ([]coach.Suggestion, error) {
	return s.suggestions, nil
}

type stubClubService struct {
	club.Service
}

func (s *stubClubService) GetByID(_ context.Context, id string) (*club.Club, error) {
	return &club.Club{ID: id, Timezone: "Europe/Kyiv"}, nil
}

func (s *stubClubService) IsManagerOrAbove(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

type stubStats struct {
	dirty []string
}

func (s *stubStats) MarkDirty(_ context.Context, clubID, date string) error {
	s.dirty = append(s.dirty, clubID+"/"+date)
	return nil
}

type serviceFixture struct {
	svc   *service
	repo  *fakeRepo
	coach *stubCoachService
	stats *stubStats
	now   time.Time
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := newFakeRepo()
	coaches := &stubCoachService{verdict: coach.Verdict{OK: true}, rateCents: 6000}
	stats := &stubStats{}
	svc := NewService(repo, &stubCourtService{quote: 4000}, coaches, &stubClubService{}, stats, 30*time.Minute).(*service)

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return &serviceFixture{svc: svc, repo: repo, coach: coaches, stats: stats, now: now}
}

func TestCreateReservesUnpaidHold(t *testing.T) {
	f := newServiceFixture(t)
	coachID := "coach-1"

	b, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		CoachID:   &coachID,
		StartTime: f.now.Add(3 * time.Hour),
		EndTime:   f.now.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusReserved, b.Status)
	assert.Equal(t, PaymentUnpaid, b.PaymentStatus)
	require.NotNil(t, b.ReservationExpiresAt)
	assert.Equal(t, f.now.Add(30*time.Minute), *b.ReservationExpiresAt)
	// Court quote plus one coached hour.
	assert.Equal(t, int64(4000+6000), b.PriceCents)
	assert.NotEmpty(t, f.stats.dirty)
}

func TestCreateRejectsPastStart(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		StartTime: f.now.Add(-time.Hour),
		EndTime:   f.now,
	})
	assert.ErrorIs(t, err, ErrStartTimePast)
}

func TestCreateRejectsCourtOverlap(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.overlap = true

	_, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		StartTime: f.now.Add(time.Hour),
		EndTime:   f.now.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateCoachedOnTakenCourtReportsNoCourtAvailable(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.overlap = true
	coachID := "coach-1"
	f.coach.suggestions = []coach.Suggestion{
		{Date: "2024-01-15", Time: "17:00", CourtID: "court-2", CourtName: "Court 2"},
	}

	_, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		CoachID:   &coachID,
		StartTime: f.now.Add(time.Hour),
		EndTime:   f.now.Add(2 * time.Hour),
	})
	require.Error(t, err)

	// The coach is free, so the rejection blames the court and still offers
	// alternatives instead of a bare conflict.
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, coach.ReasonNoCourtAvailable, conflict.Reason)
	require.Len(t, conflict.Suggestions, 1)
	assert.Equal(t, "17:00", conflict.Suggestions[0].Time)
}

func TestCreateCoachConflictCarriesSuggestions(t *testing.T) {
	f := newServiceFixture(t)
	coachID := "coach-1"
	f.coach.verdict = coach.Verdict{
		OK:      false,
		Reason:  coach.ReasonNotAvailableAtTime,
		Message: coach.ReasonNotAvailableAtTime.Message(),
	}
	f.coach.suggestions = []coach.Suggestion{
		{Date: "2024-01-15", Time: "16:00", CourtID: "court-1", CourtName: "Court 1"},
	}

	_, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		CoachID:   &coachID,
		StartTime: f.now.Add(time.Hour),
		EndTime:   f.now.Add(2 * time.Hour),
	})
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, coach.ReasonNotAvailableAtTime, conflict.Reason)
	assert.Len(t, conflict.Suggestions, 1)
	assert.Equal(t, "16:00", conflict.Suggestions[0].Time)
}

func TestPayConfirmsAndClearsExpiry(t *testing.T) {
	f := newServiceFixture(t)

	b, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		StartTime: f.now.Add(3 * time.Hour),
		EndTime:   f.now.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	paid, err := f.svc.Pay(context.Background(), b.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, paid.Status)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Nil(t, paid.ReservationExpiresAt)

	_, err = f.svc.Pay(context.Background(), b.ID, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPayRejectsExpiredHold(t *testing.T) {
	f := newServiceFixture(t)

	b, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		StartTime: f.now.Add(3 * time.Hour),
		EndTime:   f.now.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	// Move the clock past the hold even though the sweeper has not run.
	f.svc.now = func() time.Time { return f.now.Add(31 * time.Minute) }

	_, err = f.svc.Pay(context.Background(), b.ID, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyFinal)
}

func TestCancelRefundsPaidBooking(t *testing.T) {
	f := newServiceFixture(t)

	b, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		StartTime: f.now.Add(3 * time.Hour),
		EndTime:   f.now.Add(4 * time.Hour),
	})
	require.NoError(t, err)
	_, err = f.svc.Pay(context.Background(), b.ID, "user-1")
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(context.Background(), b.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, PaymentRefunded, cancelled.PaymentStatus)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = f.svc.Cancel(context.Background(), b.ID, "user-1", false)
	assert.ErrorIs(t, err, ErrAlreadyFinal)
}

func TestCancelByStrangerDenied(t *testing.T) {
	f := newServiceFixture(t)

	b, err := f.svc.Create(context.Background(), CreateRequest{
		UserID:    "user-1",
		CourtID:   "court-1",
		StartTime: f.now.Add(3 * time.Hour),
		EndTime:   f.now.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), b.ID, "someone-else", false)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
