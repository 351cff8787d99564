package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/coach"
)

type CreateCoachRequest struct {
	ClubID          string  `json:"club_id" binding:"required,uuid"`
	UserID          *string `json:"user_id" binding:"omitempty,uuid"`
	DisplayName     string  `json:"display_name" binding:"required,max=100"`
	Bio             string  `json:"bio" binding:"max=2000"`
	HourlyRateCents int64   `json:"hourly_rate_cents" binding:"min=0"`
}

type UpdateCoachRequest struct {
	DisplayName     *string `json:"display_name" binding:"omitempty,max=100"`
	Bio             *string `json:"bio" binding:"omitempty,max=2000"`
	HourlyRateCents *int64  `json:"hourly_rate_cents" binding:"omitempty,min=0"`
}

type CoachResponse struct {
	ID              string    `json:"id"`
	ClubID          string    `json:"club_id"`
	UserID          *string   `json:"user_id,omitempty"`
	DisplayName     string    `json:"display_name"`
	Bio             string    `json:"bio"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewCoachResponse(c *coach.Coach) CoachResponse {
	return CoachResponse{
		ID:              c.ID,
		ClubID:          c.ClubID,
		UserID:          c.UserID,
		DisplayName:     c.DisplayName,
		Bio:             c.Bio,
		HourlyRateCents: c.HourlyRateCents,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

type CreateWeeklySlotRequest struct {
	DayOfWeek int     `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Note      *string `json:"note" binding:"omitempty,max=200"`
}

type WeeklySlotResponse struct {
	ID        string  `json:"id"`
	DayOfWeek int     `json:"day_of_week"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Note      *string `json:"note,omitempty"`
}

func NewWeeklySlotResponse(s coach.WeeklySlot) WeeklySlotResponse {
	return WeeklySlotResponse{
		ID:        s.ID,
		DayOfWeek: s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Note:      s.Note,
	}
}

type CreateTimeOffRequest struct {
	Date      string  `json:"date" binding:"required"`
	FullDay   bool    `json:"full_day"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    *string `json:"reason" binding:"omitempty,max=500"`
}

type TimeOffResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	FullDay   bool    `json:"full_day"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func NewTimeOffResponse(t coach.TimeOff) TimeOffResponse {
	return TimeOffResponse{
		ID:        t.ID,
		Date:      t.Date,
		FullDay:   t.FullDay,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Reason:    t.Reason,
	}
}

// BookabilityResponse reports whether a coach can take a requested slot and,
// when not, the machine-readable reason plus nearby alternatives.
type BookabilityResponse struct {
	Bookable    bool               `json:"bookable"`
	Reason      string             `json:"reason,omitempty"`
	Message     string             `json:"message,omitempty"`
	Suggestions []coach.Suggestion `json:"suggestions,omitempty"`
}
