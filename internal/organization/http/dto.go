package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/organization"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateOrganizationRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewOrganizationResponse(o *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
	}
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=owner manager"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=owner manager"`
}

type MemberResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func NewMemberResponse(m *organization.Member) MemberResponse {
	return MemberResponse{
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        m.Role,
	}
}
