package organization

import (
	"context"
	"errors"
	"strings"

	"github.com/courtsidehq/courtside-backend/internal/user"
)

type UpdateRequest struct {
	Name     *string
	IsActive *bool
}

type Service interface {
	// Create makes a new organization with creatorID as its first owner.
	Create(ctx context.Context, name string, creatorID string) (*Organization, error)
	GetByID(ctx context.Context, id string) (*Organization, error)
	List(ctx context.Context, filter Filter) ([]*Organization, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Organization, error)
	Delete(ctx context.Context, id string) error

	GetMember(ctx context.Context, orgID, userID string) (*Member, error)
	AddMember(ctx context.Context, orgID, userID, role string) error
	RemoveMember(ctx context.Context, orgID, userID string) error
	UpdateMemberRole(ctx context.Context, orgID, userID, role string) error
	ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error)

	// IsManagerOrAbove reports whether the user is an owner or manager of
	// the organization. System admins always pass.
	IsManagerOrAbove(ctx context.Context, orgID, userID string) (bool, error)

	// IsOwner reports whether the user owns the organization.
	IsOwner(ctx context.Context, orgID, userID string) (bool, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{repo: repo, userService: userService}
}

func (s *service) Create(ctx context.Context, name string, creatorID string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	org := &Organization{Name: name, IsActive: true}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}
	if err := s.repo.AddMember(ctx, org.ID, creatorID, RoleOwner); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Organization, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Organization, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Organization, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		org.Name = name
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetMember(ctx context.Context, orgID, userID string) (*Member, error) {
	return s.repo.GetMember(ctx, orgID, userID)
}

func (s *service) AddMember(ctx context.Context, orgID, userID, role string) error {
	if !ValidRole(role) {
		return ErrInvalidRole
	}
	if _, err := s.repo.GetByID(ctx, orgID); err != nil {
		return err
	}
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.AddMember(ctx, orgID, userID, role)
}

func (s *service) RemoveMember(ctx context.Context, orgID, userID string) error {
	m, err := s.repo.GetMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if m.Role == RoleOwner {
		owners, err := s.repo.CountOwners(ctx, orgID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrLastOwner
		}
	}
	return s.repo.RemoveMember(ctx, orgID, userID)
}

func (s *service) UpdateMemberRole(ctx context.Context, orgID, userID, role string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if !ValidRole(role) {
		return ErrInvalidRole
	}

	m, err := s.repo.GetMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	// Demoting the last owner would strand the organization.
	if m.Role == RoleOwner && role != RoleOwner {
		owners, err := s.repo.CountOwners(ctx, orgID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrLastOwner
		}
	}
	return s.repo.UpdateMemberRole(ctx, orgID, userID, role)
}

func (s *service) ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error) {
	if _, err := s.repo.GetByID(ctx, orgID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListMembers(ctx, orgID, filter)
}

func (s *service) IsManagerOrAbove(ctx context.Context, orgID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	u, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u.IsSystemAdmin {
		return true, nil
	}

	m, err := s.repo.GetMember(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotMember) {
			return false, nil
		}
		return false, err
	}
	return m.Role == RoleOwner || m.Role == RoleManager, nil
}

func (s *service) IsOwner(ctx context.Context, orgID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	u, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u.IsSystemAdmin {
		return true, nil
	}

	m, err := s.repo.GetMember(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotMember) {
			return false, nil
		}
		return false, err
	}
	return m.Role == RoleOwner, nil
}
