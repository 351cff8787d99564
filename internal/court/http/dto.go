package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/pricing"
)

// CourtTag holds minimal court info for embedding in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CourtResponse struct {
	ID                string    `json:"id"`
	ClubID            string    `json:"club_id"`
	Name              string    `json:"name"`
	Sport             string    `json:"sport"`
	Indoor            bool      `json:"indoor"`
	DefaultPriceCents int64     `json:"default_price_cents"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:                c.ID,
		ClubID:            c.ClubID,
		Name:              c.Name,
		Sport:             c.Sport,
		Indoor:            c.Indoor,
		DefaultPriceCents: c.DefaultPriceCents,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

type CreateCourtRequest struct {
	ClubID            string `json:"club_id" binding:"required,uuid"`
	Name              string `json:"name" binding:"required"`
	Sport             string `json:"sport" binding:"required,oneof=tennis padel badminton squash pickleball"`
	Indoor            bool   `json:"indoor"`
	DefaultPriceCents int64  `json:"default_price_cents" binding:"min=0"`
}

type UpdateCourtRequest struct {
	Name              *string `json:"name"`
	Sport             *string `json:"sport" binding:"omitempty,oneof=tennis padel badminton squash pickleball"`
	Indoor            *bool   `json:"indoor"`
	DefaultPriceCents *int64  `json:"default_price_cents" binding:"omitempty,min=0"`
}

// SlotResponse is one availability grid entry, instants in RFC 3339 UTC.
type SlotResponse struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

type AvailabilityResponse struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Slots    []SlotResponse `json:"slots"`
}

func NewAvailabilityResponse(a *court.Availability) AvailabilityResponse {
	slots := make([]SlotResponse, len(a.Slots))
	for i, s := range a.Slots {
		slots[i] = SlotResponse{
			Start:  s.Window.Start.UTC(),
			End:    s.Window.End.UTC(),
			Status: string(s.Status),
		}
	}
	return AvailabilityResponse{Date: a.Date, Timezone: a.Timezone, Slots: slots}
}

type PriceRuleResponse struct {
	ID         string `json:"id"`
	DayOfWeek  int    `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	PriceCents int64  `json:"price_cents"`
}

func NewPriceRuleResponse(r pricing.Rule) PriceRuleResponse {
	return PriceRuleResponse{
		ID:         r.ID,
		DayOfWeek:  r.DayOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		PriceCents: r.PriceCents,
	}
}

type CreatePriceRuleRequest struct {
	DayOfWeek  int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
}

type QuoteResponse struct {
	PriceCents int64 `json:"price_cents"`
}
