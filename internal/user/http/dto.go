package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/user"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
}

type UserResponse struct {
	ID            string                   `json:"id"`
	Email         string                   `json:"email"`
	DisplayName   string                   `json:"display_name"`
	Phone         *string                  `json:"phone,omitempty"`
	IsActive      bool                     `json:"is_active"`
	IsSystemAdmin bool                     `json:"is_system_admin"`
	CreatedAt     time.Time                `json:"created_at"`
	LastLoginAt   *time.Time               `json:"last_login_at,omitempty"`
	Organizations []user.OrganizationBrief `json:"organizations"`
}

func NewUserResponse(u *user.User) UserResponse {
	orgs := u.Organizations
	if orgs == nil {
		orgs = []user.OrganizationBrief{}
	}
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		Phone:         u.Phone,
		IsActive:      u.IsActive,
		IsSystemAdmin: u.IsSystemAdmin,
		CreatedAt:     u.CreatedAt,
		LastLoginAt:   u.LastLoginAt,
		Organizations: orgs,
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
