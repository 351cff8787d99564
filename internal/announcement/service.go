package announcement

import (
	"context"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/club"
)

type CreateRequest struct {
	ClubID       *string
	Title        string
	Content      string
	PublishFrom  *time.Time
	PublishUntil *time.Time
}

type UpdateRequest struct {
	Title        *string
	Content      *string
	PublishFrom  *time.Time
	PublishUntil *time.Time
}

type Service interface {
	// Create publishes a notice. Club-scoped notices need a club manager,
	// platform-wide ones a system admin.
	Create(ctx context.Context, req CreateRequest, actorID string, isSysAdmin bool) (*Announcement, error)
	GetByID(ctx context.Context, id string) (*Announcement, error)
	List(ctx context.Context, filter Filter) ([]*Announcement, int, error)

	// ListVisible returns only announcements live right now.
	ListVisible(ctx context.Context, clubID string, page, pageSize int) ([]*Announcement, int, error)

	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*Announcement, error)
	Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error
}

type service struct {
	repo        Repository
	clubService club.Service

	now func() time.Time
}

func NewService(repo Repository, clubService club.Service) Service {
	return &service{
		repo:        repo,
		clubService: clubService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest, actorID string, isSysAdmin bool) (*Announcement, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Content == "" {
		return nil, ErrContentRequired
	}
	if err := s.checkScope(ctx, req.ClubID, actorID, isSysAdmin); err != nil {
		return nil, err
	}

	from := s.now()
	if req.PublishFrom != nil {
		from = *req.PublishFrom
	}
	if req.PublishUntil != nil && !from.Before(*req.PublishUntil) {
		return nil, ErrInvalidPublishAt
	}

	a := &Announcement{
		ClubID:       req.ClubID,
		Title:        req.Title,
		Content:      req.Content,
		PublishFrom:  from,
		PublishUntil: req.PublishUntil,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Announcement, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListVisible(ctx context.Context, clubID string, page, pageSize int) ([]*Announcement, int, error) {
	now := s.now()
	return s.repo.List(ctx, Filter{
		ClubID:    clubID,
		VisibleAt: &now,
		Page:      page,
		PageSize:  pageSize,
	})
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*Announcement, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(ctx, a.ClubID, actorID, isSysAdmin); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		a.Title = *req.Title
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, ErrContentRequired
		}
		a.Content = *req.Content
	}
	if req.PublishFrom != nil {
		a.PublishFrom = *req.PublishFrom
	}
	if req.PublishUntil != nil {
		a.PublishUntil = req.PublishUntil
	}
	if a.PublishUntil != nil && !a.PublishFrom.Before(*a.PublishUntil) {
		return nil, ErrInvalidPublishAt
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkScope(ctx, a.ClubID, actorID, isSysAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// checkScope enforces who may manage a notice: platform-wide requires a
// system admin, club-scoped a manager of that club.
func (s *service) checkScope(ctx context.Context, clubID *string, actorID string, isSysAdmin bool) error {
	if isSysAdmin {
		return nil
	}
	if clubID == nil {
		return ErrPermissionDenied
	}
	ok, err := s.clubService.IsManagerOrAbove(ctx, *clubID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return nil
}
