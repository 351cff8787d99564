package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/club"
)

// ClubTag holds minimal club info for embedding in other responses.
type ClubTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClubResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Timezone       string    `json:"timezone"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewClubResponse(c *club.Club) ClubResponse {
	return ClubResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Timezone:       c.Timezone,
		Address:        c.Address,
		Description:    c.Description,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type CreateClubRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	Name           string `json:"name" binding:"required"`
	Timezone       string `json:"timezone" binding:"required"`
	Address        string `json:"address"`
	Description    string `json:"description"`
}

type UpdateClubRequest struct {
	Name        *string `json:"name"`
	Timezone    *string `json:"timezone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

type BusinessHourResponse struct {
	DayOfWeek int     `json:"day_of_week"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	IsClosed  bool    `json:"is_closed"`
}

func NewBusinessHourResponse(r club.BusinessHourRule) BusinessHourResponse {
	return BusinessHourResponse{
		DayOfWeek: r.DayOfWeek,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		IsClosed:  r.IsClosed,
	}
}

type SetBusinessHoursRequest struct {
	DayOfWeek int     `json:"day_of_week" binding:"min=0,max=6"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	IsClosed  bool    `json:"is_closed"`
}

type ExceptionResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	IsClosed  bool    `json:"is_closed"`
}

func NewExceptionResponse(ex club.SpecialHourException) ExceptionResponse {
	return ExceptionResponse{
		ID:        ex.ID,
		Date:      ex.Date,
		OpenTime:  ex.OpenTime,
		CloseTime: ex.CloseTime,
		IsClosed:  ex.IsClosed,
	}
}

type CreateExceptionRequest struct {
	Date      string  `json:"date" binding:"required"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
	IsClosed  bool    `json:"is_closed"`
}
