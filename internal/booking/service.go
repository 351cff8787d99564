package booking

import (
	"context"
	"log"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/coach"
	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// ConflictError is returned when a requested slot collides with the coach's
// schedule or existing bookings. It carries the machine-readable reason and
// nearby alternatives so the client can offer a one-tap rebook.
type ConflictError struct {
	Reason      coach.ConflictReason
	Message     string
	Suggestions []coach.Suggestion
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Recomputer is notified when bookings change so derived aggregates can be
// refreshed. Implemented by the stats service.
type Recomputer interface {
	MarkDirty(ctx context.Context, clubID, date string) error
}

type CreateRequest struct {
	UserID    string
	CourtID   string
	CoachID   *string
	StartTime time.Time
	EndTime   time.Time
}

type RescheduleRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Reschedule moves a non-terminal booking to a new window, re-running
	// the court and coach conflict checks and re-pricing.
	Reschedule(ctx context.Context, id string, req RescheduleRequest, actorID string, isSysAdmin bool) (*Booking, error)

	// Pay settles an unpaid hold, confirming the booking.
	Pay(ctx context.Context, id string, actorID string) (*Booking, error)

	Cancel(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error)

	// MarkNoShow finalizes a booking whose player never arrived. Managers only.
	MarkNoShow(ctx context.Context, id string, actorID string) (*Booking, error)

	Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error
}

type service struct {
	repo         Repository
	courtService court.Service
	coachService coach.Service
	clubService  club.Service
	stats        Recomputer
	holdTTL      time.Duration
	now          func() time.Time
}

func NewService(
	repo Repository,
	courtService court.Service,
	coachService coach.Service,
	clubService club.Service,
	stats Recomputer,
	holdTTL time.Duration,
) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		coachService: coachService,
		clubService:  clubService,
		stats:        stats,
		holdTTL:      holdTTL,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// localParts expresses an absolute window in the club's local calendar, the
// form the coach conflict checks work in.
func (s *service) localParts(cl *club.Club, start, end time.Time) (date, startClock string, durationMin int, err error) {
	loc, err := schedule.LoadTimezone(cl.Timezone)
	if err != nil {
		return "", "", 0, err
	}
	localStart := start.In(loc)
	return localStart.Format("2006-01-02"), localStart.Format("15:04"), int(end.Sub(start).Minutes()), nil
}

func (s *service) markDirty(ctx context.Context, clubID string, when time.Time, timezone string) {
	loc, err := schedule.LoadTimezone(timezone)
	if err != nil {
		return
	}
	date := when.In(loc).Format("2006-01-02")
	if err := s.stats.MarkDirty(ctx, clubID, date); err != nil {
		log.Printf("booking: mark stats dirty for club %s date %s: %v", clubID, date, err)
	}
}

// checkCoach runs the bookability checks and, on rejection, collects
// alternatives into a ConflictError.
func (s *service) checkCoach(ctx context.Context, coachID string, cl *club.Club, start, end time.Time) error {
	date, startClock, durationMin, err := s.localParts(cl, start, end)
	if err != nil {
		return err
	}

	verdict, err := s.coachService.CheckBooking(ctx, coachID, date, startClock, durationMin)
	if err != nil {
		return err
	}
	if verdict.OK {
		return nil
	}

	conflict := &ConflictError{Reason: verdict.Reason, Message: verdict.Message}
	suggestions, err := s.coachService.SuggestAlternatives(ctx, coachID, date, startClock, durationMin, 3)
	if err != nil {
		log.Printf("booking: suggest alternatives for coach %s: %v", coachID, err)
	} else {
		conflict.Suggestions = suggestions
	}
	return conflict
}

// courtTaken reports a coach-paired request whose court is occupied. The
// coach may be free, so the reason is NO_COURT_AVAILABLE rather than a coach
// conflict, and alternatives where both are free ride along.
func (s *service) courtTaken(ctx context.Context, coachID string, cl *club.Club, start, end time.Time) error {
	date, startClock, durationMin, err := s.localParts(cl, start, end)
	if err != nil {
		return err
	}

	conflict := &ConflictError{
		Reason:  coach.ReasonNoCourtAvailable,
		Message: coach.ReasonNoCourtAvailable.Message(),
	}
	suggestions, err := s.coachService.SuggestAlternatives(ctx, coachID, date, startClock, durationMin, 3)
	if err != nil {
		log.Printf("booking: suggest alternatives for coach %s: %v", coachID, err)
	} else {
		conflict.Suggestions = suggestions
	}
	return conflict
}

func (s *service) price(ctx context.Context, req CreateRequest) (int64, error) {
	price, err := s.courtService.Quote(ctx, req.CourtID, schedule.TimeWindow{Start: req.StartTime, End: req.EndTime})
	if err != nil {
		return 0, err
	}
	if req.CoachID != nil {
		co, err := s.coachService.GetByID(ctx, *req.CoachID)
		if err != nil {
			return 0, err
		}
		durationMin := int64(req.EndTime.Sub(req.StartTime).Minutes())
		price += co.HourlyRateCents * durationMin / 60
	}
	return price, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	now := s.now()
	if req.StartTime.Before(now) {
		return nil, ErrStartTimePast
	}

	crt, err := s.courtService.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	cl, err := s.clubService.GetByID(ctx, crt.ClubID)
	if err != nil {
		return nil, err
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, req.CourtID, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		if req.CoachID != nil {
			return nil, s.courtTaken(ctx, *req.CoachID, cl, req.StartTime, req.EndTime)
		}
		return nil, ErrTimeConflict
	}

	if req.CoachID != nil {
		if err := s.checkCoach(ctx, *req.CoachID, cl, req.StartTime, req.EndTime); err != nil {
			return nil, err
		}
	}

	price, err := s.price(ctx, req)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(s.holdTTL)
	b := &Booking{
		CourtID:              req.CourtID,
		CoachID:              req.CoachID,
		UserID:               req.UserID,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Status:               StatusReserved,
		PaymentStatus:        PaymentUnpaid,
		PriceCents:           price,
		ReservationExpiresAt: &expiresAt,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.markDirty(ctx, cl.ID, b.StartTime, cl.Timezone)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// canManage reports whether the actor may administer the booking: the owner,
// a manager of the club's organization, or a system admin.
func (s *service) canManage(ctx context.Context, b *Booking, actorID string, isSysAdmin bool) (bool, error) {
	if isSysAdmin || b.UserID == actorID {
		return true, nil
	}
	return s.clubService.IsManagerOrAbove(ctx, b.ClubID, actorID)
}

func (s *service) isClubManager(ctx context.Context, b *Booking, actorID string) (bool, error) {
	return s.clubService.IsManagerOrAbove(ctx, b.ClubID, actorID)
}

func (s *service) Reschedule(ctx context.Context, id string, req RescheduleRequest, actorID string, isSysAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.canManage(ctx, b, actorID, isSysAdmin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	if b.Status.IsTerminal() {
		return nil, ErrAlreadyFinal
	}

	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartTime.Before(s.now()) {
		return nil, ErrStartTimePast
	}

	cl, err := s.clubService.GetByID(ctx, b.ClubID)
	if err != nil {
		return nil, err
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, b.CourtID, req.StartTime, req.EndTime, b.ID)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		if b.CoachID != nil {
			return nil, s.courtTaken(ctx, *b.CoachID, cl, req.StartTime, req.EndTime)
		}
		return nil, ErrTimeConflict
	}

	if b.CoachID != nil {
		if err := s.checkCoach(ctx, *b.CoachID, cl, req.StartTime, req.EndTime); err != nil {
			return nil, err
		}
	}

	oldStart := b.StartTime
	price, err := s.price(ctx, CreateRequest{
		CourtID:   b.CourtID,
		CoachID:   b.CoachID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return nil, err
	}

	b.StartTime = req.StartTime
	b.EndTime = req.EndTime
	b.PriceCents = price
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.markDirty(ctx, b.ClubID, oldStart, cl.Timezone)
	s.markDirty(ctx, b.ClubID, b.StartTime, cl.Timezone)
	return b, nil
}

func (s *service) Pay(ctx context.Context, id string, actorID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrPermissionDenied
	}
	if b.Status.IsTerminal() {
		return nil, ErrAlreadyFinal
	}
	if b.PaymentStatus != PaymentUnpaid {
		return nil, ErrAlreadyPaid
	}
	// A hold that already ran out cannot be rescued by a late payment; the
	// sweeper may not have visited it yet.
	if ShouldAutoCancel(b, s.now()) {
		return nil, ErrAlreadyFinal
	}

	b.PaymentStatus = PaymentPaid
	b.Status = StatusConfirmed
	b.ReservationExpiresAt = nil
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.canManage(ctx, b, actorID, isSysAdmin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	if b.Status.IsTerminal() {
		return nil, ErrAlreadyFinal
	}

	now := s.now()
	b.Status = StatusCancelled
	b.CancelledAt = &now
	if b.PaymentStatus == PaymentPaid {
		b.PaymentStatus = PaymentRefunded
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	cl, err := s.clubService.GetByID(ctx, b.ClubID)
	if err == nil {
		s.markDirty(ctx, b.ClubID, b.StartTime, cl.Timezone)
	}
	return b, nil
}

func (s *service) MarkNoShow(ctx context.Context, id string, actorID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.isClubManager(ctx, b, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	if b.Status.IsTerminal() {
		return nil, ErrAlreadyFinal
	}
	if b.PaymentStatus != PaymentPaid {
		return nil, ErrNotPaid
	}

	b.Status = StatusNoShow
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	ok, err := s.canManage(ctx, b, actorID, isSysAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
