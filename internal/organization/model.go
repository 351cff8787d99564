package organization

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "organization not found")
	ErrNameRequired      = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidRole       = apperror.New(http.StatusBadRequest, "invalid role")
	ErrUserNotMember     = apperror.New(http.StatusNotFound, "user is not a member of this organization")
	ErrUserAlreadyMember = apperror.New(http.StatusConflict, "user is already a member of this organization")
	ErrUserNotFound      = apperror.New(http.StatusNotFound, "user not found")
	ErrLastOwner         = apperror.New(http.StatusConflict, "organization must keep at least one owner")
)

// Organization is the business entity that owns one or more clubs.
type Organization struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// Roles match the database enum.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
)

func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleManager
}

// Member joins organization_members with users.
type Member struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string
}

type Filter struct {
	Page     int
	PageSize int
}

type MemberFilter struct {
	Page     int
	PageSize int
}
