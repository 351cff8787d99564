package club

import (
	"context"
	"strings"

	"github.com/courtsidehq/courtside-backend/internal/organization"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

type CreateRequest struct {
	OrganizationID string
	Name           string
	Timezone       string
	Address        string
	Description    string
}

type UpdateRequest struct {
	Name        *string
	Timezone    *string
	Address     *string
	Description *string
}

type SetHoursRequest struct {
	DayOfWeek int
	OpenTime  *string
	CloseTime *string
	IsClosed  bool
}

type CreateExceptionRequest struct {
	Date      string
	OpenTime  *string
	CloseTime *string
	IsClosed  bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Club, error)
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, filter Filter) ([]*Club, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Club, error)
	Delete(ctx context.Context, id string) error

	SetBusinessHours(ctx context.Context, clubID string, req SetHoursRequest) (*BusinessHourRule, error)
	ListBusinessHours(ctx context.Context, clubID string) ([]BusinessHourRule, error)
	CreateException(ctx context.Context, clubID string, req CreateExceptionRequest) (*SpecialHourException, error)
	ListExceptions(ctx context.Context, clubID string) ([]SpecialHourException, error)
	DeleteException(ctx context.Context, clubID, id string) error

	// HoursForDate resolves the club's effective opening window on a date,
	// applying any special-hours exception over the weekly rule.
	HoursForDate(ctx context.Context, clubID, date string) (DayHours, *Club, error)

	// IsManagerOrAbove reports whether the user manages the club's organization.
	IsManagerOrAbove(ctx context.Context, clubID, userID string) (bool, error)
}

type service struct {
	repo       Repository
	orgService organization.Service
}

func NewService(repo Repository, orgService organization.Service) Service {
	return &service{
		repo:       repo,
		orgService: orgService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Club, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !schedule.IsValidIANATimezone(req.Timezone) {
		return nil, ErrInvalidTimezone
	}
	if _, err := s.orgService.GetByID(ctx, req.OrganizationID); err != nil {
		return nil, err
	}

	c := &Club{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Timezone:       req.Timezone,
		Address:        req.Address,
		Description:    req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Club, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Club, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Club, error) {
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
	if req.Timezone != nil {
		if !schedule.IsValidIANATimezone(*req.Timezone) {
			return nil, ErrInvalidTimezone
		}
		c.Timezone = *req.Timezone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) SetBusinessHours(ctx context.Context, clubID string, req SetHoursRequest) (*BusinessHourRule, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}
	if err := validateHoursPair(req.OpenTime, req.CloseTime, req.IsClosed); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	rule := &BusinessHourRule{
		ClubID:    clubID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsClosed:  req.IsClosed,
	}
	if rule.IsClosed {
		rule.OpenTime = nil
		rule.CloseTime = nil
	}
	if err := s.repo.UpsertBusinessHours(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *service) ListBusinessHours(ctx context.Context, clubID string) ([]BusinessHourRule, error) {
	return s.repo.ListBusinessHours(ctx, clubID)
}

func (s *service) CreateException(ctx context.Context, clubID string, req CreateExceptionRequest) (*SpecialHourException, error) {
	if _, _, _, err := schedule.ParseDate(req.Date); err != nil {
		return nil, err
	}
	if err := validateHoursPair(req.OpenTime, req.CloseTime, req.IsClosed); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	ex := &SpecialHourException{
		ClubID:    clubID,
		Date:      req.Date,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsClosed:  req.IsClosed,
	}
	if ex.IsClosed {
		ex.OpenTime = nil
		ex.CloseTime = nil
	}
	if err := s.repo.CreateException(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}

func (s *service) ListExceptions(ctx context.Context, clubID string) ([]SpecialHourException, error) {
	return s.repo.ListExceptions(ctx, clubID, nil)
}

func (s *service) DeleteException(ctx context.Context, clubID, id string) error {
	return s.repo.DeleteException(ctx, clubID, id)
}

func (s *service) HoursForDate(ctx context.Context, clubID, date string) (DayHours, *Club, error) {
	c, err := s.repo.GetByID(ctx, clubID)
	if err != nil {
		return DayHours{}, nil, err
	}

	day, err := schedule.DayRange(date, c.Timezone)
	if err != nil {
		return DayHours{}, nil, err
	}

	loc, err := schedule.LoadTimezone(c.Timezone)
	if err != nil {
		return DayHours{}, nil, err
	}
	weekday := day.StartOfDay.In(loc).Weekday()

	weekly, err := s.repo.ListBusinessHours(ctx, clubID)
	if err != nil {
		return DayHours{}, nil, err
	}
	exceptions, err := s.repo.ListExceptions(ctx, clubID, []string{date})
	if err != nil {
		return DayHours{}, nil, err
	}

	return EffectiveHours(date, weekday, weekly, exceptions), c, nil
}

func (s *service) IsManagerOrAbove(ctx context.Context, clubID, userID string) (bool, error) {
	c, err := s.repo.GetByID(ctx, clubID)
	if err != nil {
		return false, err
	}
	return s.orgService.IsManagerOrAbove(ctx, c.OrganizationID, userID)
}

func validateHoursPair(open, close *string, isClosed bool) error {
	if isClosed {
		return nil
	}
	if open == nil || close == nil {
		return ErrHoursRequired
	}
	if _, err := schedule.ParseClock(*open); err != nil {
		return err
	}
	if _, err := schedule.ParseClock(*close); err != nil {
		return err
	}
	if *open >= *close {
		return ErrInvalidHours
	}
	return nil
}
