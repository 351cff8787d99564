package coach

import (
	"context"
	"strings"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

const (
	// suggestionStepMinutes is the grid on which alternative starts are tried.
	suggestionStepMinutes = 30
	// suggestionHorizonDays bounds the outward search for alternatives.
	suggestionHorizonDays = 7
	// suggestionCourtLimit caps how many courts are considered per day.
	suggestionCourtLimit = 50
)

// CommitmentSource supplies existing busy windows from the booking store.
type CommitmentSource interface {
	CoachCommitments(ctx context.Context, coachID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error)
	CourtCommitments(ctx context.Context, courtID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error)
}

type CreateRequest struct {
	ClubID          string
	UserID          *string
	DisplayName     string
	Bio             string
	HourlyRateCents int64
}

type UpdateRequest struct {
	DisplayName     *string
	Bio             *string
	HourlyRateCents *int64
}

type WeeklySlotRequest struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Note      *string
}

type TimeOffRequest struct {
	Date      string
	FullDay   bool
	StartTime *string
	EndTime   *string
	Reason    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Coach, error)
	GetByID(ctx context.Context, id string) (*Coach, error)
	List(ctx context.Context, filter Filter) ([]*Coach, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Coach, error)
	Delete(ctx context.Context, id string) error

	AddWeeklySlot(ctx context.Context, coachID string, req WeeklySlotRequest) (*WeeklySlot, error)
	ListWeeklySlots(ctx context.Context, coachID string) ([]WeeklySlot, error)
	DeleteWeeklySlot(ctx context.Context, coachID, slotID string) error

	AddTimeOff(ctx context.Context, coachID string, req TimeOffRequest) (*TimeOff, error)
	ListTimeOff(ctx context.Context, coachID string) ([]TimeOff, error)
	DeleteTimeOff(ctx context.Context, coachID, id string) error

	// CheckBooking runs the five ordered bookability checks for a local
	// date + start clock + duration against the coach's schedule.
	CheckBooking(ctx context.Context, coachID, date, startClock string, durationMin int) (Verdict, error)

	// SuggestAlternatives searches outward from the requested time, same day
	// first then following days, for up to limit slots where the coach and
	// some court of the club are simultaneously free.
	SuggestAlternatives(ctx context.Context, coachID, date, startClock string, durationMin, limit int) ([]Suggestion, error)
}

type service struct {
	repo         Repository
	clubService  club.Service
	courtService court.Service
	bookings     CommitmentSource
}

func NewService(repo Repository, clubService club.Service, courtService court.Service, bookings CommitmentSource) Service {
	return &service{
		repo:         repo,
		clubService:  clubService,
		courtService: courtService,
		bookings:     bookings,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Coach, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.clubService.GetByID(ctx, req.ClubID); err != nil {
		return nil, err
	}

	c := &Coach{
		ClubID:          req.ClubID,
		UserID:          req.UserID,
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		HourlyRateCents: req.HourlyRateCents,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Coach, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Coach, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Coach, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, ErrEmptyName
		}
		c.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		c.Bio = *req.Bio
	}
	if req.HourlyRateCents != nil {
		c.HourlyRateCents = *req.HourlyRateCents
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AddWeeklySlot(ctx context.Context, coachID string, req WeeklySlotRequest) (*WeeklySlot, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}
	if _, err := schedule.ParseClock(req.StartTime); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseClock(req.EndTime); err != nil {
		return nil, err
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidWindow
	}
	if _, err := s.repo.GetByID(ctx, coachID); err != nil {
		return nil, err
	}

	// Slots on the same day must stay disjoint.
	existing, err := s.repo.ListWeeklySlots(ctx, coachID)
	if err != nil {
		return nil, err
	}
	for _, slot := range existing {
		if slot.DayOfWeek != req.DayOfWeek {
			continue
		}
		if schedule.TimeStringOverlap(slot.StartTime, slot.EndTime, req.StartTime, req.EndTime) {
			return nil, ErrSlotOverlap
		}
	}

	slot := &WeeklySlot{
		CoachID:   coachID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}
	if err := s.repo.CreateWeeklySlot(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *service) ListWeeklySlots(ctx context.Context, coachID string) ([]WeeklySlot, error) {
	return s.repo.ListWeeklySlots(ctx, coachID)
}

func (s *service) DeleteWeeklySlot(ctx context.Context, coachID, slotID string) error {
	return s.repo.DeleteWeeklySlot(ctx, coachID, slotID)
}

func (s *service) AddTimeOff(ctx context.Context, coachID string, req TimeOffRequest) (*TimeOff, error) {
	if _, _, _, err := schedule.ParseDate(req.Date); err != nil {
		return nil, err
	}
	if !req.FullDay {
		if req.StartTime == nil || req.EndTime == nil {
			return nil, ErrTimesRequired
		}
		if _, err := schedule.ParseClock(*req.StartTime); err != nil {
			return nil, err
		}
		if _, err := schedule.ParseClock(*req.EndTime); err != nil {
			return nil, err
		}
		if *req.StartTime >= *req.EndTime {
			return nil, ErrInvalidWindow
		}
	}
	if _, err := s.repo.GetByID(ctx, coachID); err != nil {
		return nil, err
	}

	off := &TimeOff{
		CoachID:   coachID,
		Date:      req.Date,
		FullDay:   req.FullDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if off.FullDay {
		off.StartTime = nil
		off.EndTime = nil
	}
	if err := s.repo.CreateTimeOff(ctx, off); err != nil {
		return nil, err
	}
	return off, nil
}

func (s *service) ListTimeOff(ctx context.Context, coachID string) ([]TimeOff, error) {
	return s.repo.ListTimeOff(ctx, coachID, nil)
}

func (s *service) DeleteTimeOff(ctx context.Context, coachID, id string) error {
	return s.repo.DeleteTimeOff(ctx, coachID, id)
}

func (s *service) CheckBooking(ctx context.Context, coachID, date, startClock string, durationMin int) (Verdict, error) {
	q, c, err := s.buildQuery(ctx, coachID, date, startClock, durationMin)
	if err != nil {
		return Verdict{}, err
	}

	weekly, err := s.repo.ListWeeklySlots(ctx, c.ID)
	if err != nil {
		return Verdict{}, err
	}
	timeOff, err := s.repo.ListTimeOff(ctx, c.ID, []string{date})
	if err != nil {
		return Verdict{}, err
	}

	day, err := s.dayWindow(ctx, c.ClubID, date)
	if err != nil {
		return Verdict{}, err
	}
	busy, err := s.bookings.CoachCommitments(ctx, c.ID, day)
	if err != nil {
		return Verdict{}, err
	}

	return CheckBookable(*q, weekly, timeOff, busy), nil
}

func (s *service) SuggestAlternatives(ctx context.Context, coachID, date, startClock string, durationMin, limit int) ([]Suggestion, error) {
	c, err := s.repo.GetByID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	startMin, err := schedule.ParseClock(startClock)
	if err != nil {
		return nil, err
	}
	year, month, day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}

	weekly, err := s.repo.ListWeeklySlots(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	courts, _, err := s.courtService.List(ctx, court.Filter{ClubID: c.ClubID, PageSize: suggestionCourtLimit})
	if err != nil {
		return nil, err
	}

	var out []Suggestion
	for offset := 0; offset <= suggestionHorizonDays && len(out) < limit; offset++ {
		d := time.Date(year, month, day+offset, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

		hours, cl, err := s.clubService.HoursForDate(ctx, c.ClubID, d)
		if err != nil {
			return nil, err
		}
		if hours.Closed {
			continue
		}

		loc, err := schedule.LoadTimezone(cl.Timezone)
		if err != nil {
			return nil, err
		}
		dayRange, err := schedule.DayRange(d, cl.Timezone)
		if err != nil {
			return nil, err
		}
		window := schedule.TimeWindow{Start: dayRange.StartOfDay, End: dayRange.EndOfDay}

		timeOff, err := s.repo.ListTimeOff(ctx, c.ID, []string{d})
		if err != nil {
			return nil, err
		}
		coachBusy, err := s.bookings.CoachCommitments(ctx, c.ID, window)
		if err != nil {
			return nil, err
		}

		options := make([]CourtOption, 0, len(courts))
		for _, crt := range courts {
			busy, err := s.bookings.CourtCommitments(ctx, crt.ID, window)
			if err != nil {
				return nil, err
			}
			options = append(options, CourtOption{ID: crt.ID, Name: crt.Name, Busy: busy})
		}

		// Search outward from the requested time on the requested day;
		// later days are walked chronologically from opening.
		ref := startMin
		if offset > 0 {
			ref, _ = schedule.ParseClock(hours.Open)
		}

		weekday := dayRange.StartOfDay.In(loc).Weekday()
		found := findSuggestions(d, weekday, loc, hours, weekly, timeOff, coachBusy, options,
			durationMin, suggestionStepMinutes, ref, limit-len(out))
		out = append(out, found...)
	}

	return out, nil
}

// buildQuery normalizes a (date, clock, duration) request to the coach's
// club timezone. Requests may not cross local midnight.
func (s *service) buildQuery(ctx context.Context, coachID, date, startClock string, durationMin int) (*BookingQuery, *Coach, error) {
	c, err := s.repo.GetByID(ctx, coachID)
	if err != nil {
		return nil, nil, err
	}
	cl, err := s.clubService.GetByID(ctx, c.ClubID)
	if err != nil {
		return nil, nil, err
	}

	year, month, day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, nil, err
	}
	startMin, err := schedule.ParseClock(startClock)
	if err != nil {
		return nil, nil, err
	}
	endMin := startMin + durationMin
	if durationMin <= 0 || endMin > 24*60 {
		return nil, nil, ErrInvalidWindow
	}

	loc, err := schedule.LoadTimezone(cl.Timezone)
	if err != nil {
		return nil, nil, err
	}

	q := &BookingQuery{
		Date:       date,
		Weekday:    schedule.At(year, month, day, 0, loc).Weekday(),
		StartClock: startClock,
		EndClock:   schedule.FormatClock(endMin),
		Window: schedule.TimeWindow{
			Start: schedule.At(year, month, day, startMin, loc),
			End:   schedule.At(year, month, day, endMin, loc),
		},
	}
	return q, c, nil
}

func (s *service) dayWindow(ctx context.Context, clubID, date string) (schedule.TimeWindow, error) {
	cl, err := s.clubService.GetByID(ctx, clubID)
	if err != nil {
		return schedule.TimeWindow{}, err
	}
	day, err := schedule.DayRange(date, cl.Timezone)
	if err != nil {
		return schedule.TimeWindow{}, err
	}
	return schedule.TimeWindow{Start: day.StartOfDay, End: day.EndOfDay}, nil
}
