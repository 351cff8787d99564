package court

import (
	"context"
	"strings"

	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/pricing"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// BookingSource supplies the active booking windows of a court from the
// booking store. Defined here so the booking package stays unaware of the
// availability engine that consumes it.
type BookingSource interface {
	CourtCommitments(ctx context.Context, courtID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error)
}

type CreateRequest struct {
	ClubID            string
	Name              string
	Sport             string
	Indoor            bool
	DefaultPriceCents int64
}

type UpdateRequest struct {
	Name              *string
	Sport             *string
	Indoor            *bool
	DefaultPriceCents *int64
}

type PriceRuleRequest struct {
	DayOfWeek  int
	StartTime  string
	EndTime    string
	PriceCents int64
}

// Availability is a court's resolved slot grid for one date.
type Availability struct {
	Date     string
	Timezone string
	Slots    []Slot
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id string) error

	AddPriceRule(ctx context.Context, courtID string, req PriceRuleRequest) (*pricing.Rule, error)
	ListPriceRules(ctx context.Context, courtID string) ([]pricing.Rule, error)
	DeletePriceRule(ctx context.Context, courtID, ruleID string) error

	// DayAvailability computes the slot grid for a court on a local date.
	DayAvailability(ctx context.Context, courtID, date string, granularityMinutes int) (*Availability, error)

	// Quote resolves the price in cents of an absolute slot window on a date.
	Quote(ctx context.Context, courtID string, window schedule.TimeWindow) (int64, error)

	// QuoteLocal resolves the price of a slot given in the club's local
	// date and clock bounds.
	QuoteLocal(ctx context.Context, courtID, date, startClock, endClock string) (int64, error)
}

type service struct {
	repo        Repository
	clubService club.Service
	bookings    BookingSource
}

func NewService(repo Repository, clubService club.Service, bookings BookingSource) Service {
	return &service{
		repo:        repo,
		clubService: clubService,
		bookings:    bookings,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !validSport(req.Sport) {
		return nil, ErrInvalidSport
	}
	if req.DefaultPriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if _, err := s.clubService.GetByID(ctx, req.ClubID); err != nil {
		return nil, err
	}

	c := &Court{
		ClubID:            req.ClubID,
		Name:              req.Name,
		Sport:             req.Sport,
		Indoor:            req.Indoor,
		DefaultPriceCents: req.DefaultPriceCents,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = *req.Name
	}
	if req.Sport != nil {
		if !validSport(*req.Sport) {
			return nil, ErrInvalidSport
		}
		c.Sport = *req.Sport
	}
	if req.Indoor != nil {
		c.Indoor = *req.Indoor
	}
	if req.DefaultPriceCents != nil {
		if *req.DefaultPriceCents < 0 {
			return nil, ErrInvalidPrice
		}
		c.DefaultPriceCents = *req.DefaultPriceCents
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AddPriceRule(ctx context.Context, courtID string, req PriceRuleRequest) (*pricing.Rule, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, club.ErrInvalidDay
	}
	if _, err := schedule.ParseClock(req.StartTime); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseClock(req.EndTime); err != nil {
		return nil, err
	}
	if req.StartTime >= req.EndTime {
		return nil, club.ErrInvalidHours
	}
	if req.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if _, err := s.repo.GetByID(ctx, courtID); err != nil {
		return nil, err
	}

	rule := &pricing.Rule{
		CourtID:    courtID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		PriceCents: req.PriceCents,
	}
	if err := s.repo.CreatePriceRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *service) ListPriceRules(ctx context.Context, courtID string) ([]pricing.Rule, error) {
	return s.repo.ListPriceRules(ctx, courtID)
}

func (s *service) DeletePriceRule(ctx context.Context, courtID, ruleID string) error {
	return s.repo.DeletePriceRule(ctx, courtID, ruleID)
}

func (s *service) DayAvailability(ctx context.Context, courtID, date string, granularityMinutes int) (*Availability, error) {
	c, err := s.repo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	hours, cl, err := s.clubService.HoursForDate(ctx, c.ClubID, date)
	if err != nil {
		return nil, err
	}

	day, err := schedule.DayRange(date, cl.Timezone)
	if err != nil {
		return nil, err
	}
	busy, err := s.bookings.CourtCommitments(ctx, courtID, schedule.TimeWindow{Start: day.StartOfDay, End: day.EndOfDay})
	if err != nil {
		return nil, err
	}

	slots, err := DaySlots(date, cl.Timezone, hours, busy, granularityMinutes)
	if err != nil {
		return nil, err
	}

	return &Availability{Date: date, Timezone: cl.Timezone, Slots: slots}, nil
}

func (s *service) Quote(ctx context.Context, courtID string, window schedule.TimeWindow) (int64, error) {
	c, err := s.repo.GetByID(ctx, courtID)
	if err != nil {
		return 0, err
	}
	cl, err := s.clubService.GetByID(ctx, c.ClubID)
	if err != nil {
		return 0, err
	}
	loc, err := schedule.LoadTimezone(cl.Timezone)
	if err != nil {
		return 0, err
	}
	rules, err := s.repo.ListPriceRules(ctx, courtID)
	if err != nil {
		return 0, err
	}

	return pricing.ResolveForWindow(rules, c.DefaultPriceCents, window, loc), nil
}

func (s *service) QuoteLocal(ctx context.Context, courtID, date, startClock, endClock string) (int64, error) {
	c, err := s.repo.GetByID(ctx, courtID)
	if err != nil {
		return 0, err
	}
	cl, err := s.clubService.GetByID(ctx, c.ClubID)
	if err != nil {
		return 0, err
	}

	year, month, day, err := schedule.ParseDate(date)
	if err != nil {
		return 0, err
	}
	loc, err := schedule.LoadTimezone(cl.Timezone)
	if err != nil {
		return 0, err
	}
	if _, err := schedule.ParseClock(startClock); err != nil {
		return 0, err
	}
	if _, err := schedule.ParseClock(endClock); err != nil {
		return 0, err
	}
	if startClock >= endClock {
		return 0, club.ErrInvalidHours
	}

	rules, err := s.repo.ListPriceRules(ctx, courtID)
	if err != nil {
		return 0, err
	}

	weekday := schedule.At(year, month, day, 0, loc).Weekday()
	return pricing.Resolve(rules, c.DefaultPriceCents, weekday, startClock, endClock), nil
}

func validSport(sport string) bool {
	for _, s := range ValidSports {
		if sport == s {
			return true
		}
	}
	return false
}
