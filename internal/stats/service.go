package stats

import (
	"context"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// staleAfter caps how long a clean row is trusted; the daily rollover (a
// booking turning ongoing or completed) changes nothing the aggregate tracks,
// so a generous window is fine.
const staleAfter = 24 * time.Hour

type Service interface {
	// ForDate returns the aggregate for one club-date, recomputing it first
	// when missing, dirty, or stale.
	ForDate(ctx context.Context, clubID, date string) (*ClubDailyStats, error)

	// Range returns day-by-day aggregates for an inclusive local date range.
	Range(ctx context.Context, clubID, from, to string) ([]*ClubDailyStats, error)

	// MarkDirty flags a club-date for recomputation on next read.
	MarkDirty(ctx context.Context, clubID, date string) error
}

type service struct {
	repo        Repository
	clubService club.Service
	now         func() time.Time
}

func NewService(repo Repository, clubService club.Service) Service {
	return &service{
		repo:        repo,
		clubService: clubService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) MarkDirty(ctx context.Context, clubID, date string) error {
	return s.repo.MarkDirty(ctx, clubID, date)
}

func (s *service) ForDate(ctx context.Context, clubID, date string) (*ClubDailyStats, error) {
	cached, err := s.repo.Get(ctx, clubID, date)
	if err != nil {
		return nil, err
	}
	if cached != nil && !cached.Dirty && s.now().Sub(cached.ComputedAt) < staleAfter {
		return cached, nil
	}
	return s.recompute(ctx, clubID, date)
}

func (s *service) Range(ctx context.Context, clubID, from, to string) ([]*ClubDailyStats, error) {
	fy, fm, fd, err := schedule.ParseDate(from)
	if err != nil {
		return nil, err
	}
	ty, tm, td, err := schedule.ParseDate(to)
	if err != nil {
		return nil, err
	}

	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var out []*ClubDailyStats
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day, err := s.ForDate(ctx, clubID, d.Format("2006-01-02"))
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

func (s *service) recompute(ctx context.Context, clubID, date string) (*ClubDailyStats, error) {
	hours, cl, err := s.clubService.HoursForDate(ctx, clubID, date)
	if err != nil {
		return nil, err
	}

	dayRange, err := schedule.DayRange(date, cl.Timezone)
	if err != nil {
		return nil, err
	}
	day := schedule.TimeWindow{Start: dayRange.StartOfDay, End: dayRange.EndOfDay}

	openMinutes := 0
	if !hours.Closed {
		openMin, err := schedule.ParseClock(hours.Open)
		if err != nil {
			return nil, err
		}
		closeMin, err := schedule.ParseClock(hours.Close)
		if err != nil {
			return nil, err
		}
		openMinutes = closeMin - openMin
	}

	courtCount, err := s.repo.CountCourts(ctx, clubID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.BookingsForDay(ctx, clubID, day)
	if err != nil {
		return nil, err
	}

	agg := Compute(ComputeInput{
		Day:         day,
		OpenMinutes: openMinutes,
		CourtCount:  courtCount,
		Bookings:    bookings,
	})
	agg.ClubID = clubID
	agg.Date = date
	agg.ComputedAt = s.now()

	if err := s.repo.Upsert(ctx, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}
