package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/booking"
	"github.com/courtsidehq/courtside-backend/internal/coach"
)

type CreateBookingRequest struct {
	CourtID   string    `json:"court_id" binding:"required,uuid"`
	CoachID   *string   `json:"coach_id" binding:"omitempty,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type BookingResponse struct {
	ID        string  `json:"id"`
	CourtID   string  `json:"court_id"`
	CourtName string  `json:"court_name"`
	ClubID    string  `json:"club_id"`
	ClubName  string  `json:"club_name"`
	CoachID   *string `json:"coach_id,omitempty"`
	CoachName *string `json:"coach_name,omitempty"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Status is the effective status at response time; ongoing and completed
	// windows show as such even before the sweeper persists them.
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PriceCents    int64  `json:"price_cents"`

	ReservationExpiresAt *time.Time `json:"reservation_expires_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                   b.ID,
		CourtID:              b.CourtID,
		CourtName:            b.CourtName,
		ClubID:               b.ClubID,
		ClubName:             b.ClubName,
		CoachID:              b.CoachID,
		CoachName:            b.CoachName,
		UserID:               b.UserID,
		UserName:             b.UserName,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		Status:               string(booking.EffectiveStatus(b, time.Now().UTC())),
		PaymentStatus:        string(b.PaymentStatus),
		PriceCents:           b.PriceCents,
		ReservationExpiresAt: b.ReservationExpiresAt,
		CancelledAt:          b.CancelledAt,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// ConflictResponse is the 409 body for coach scheduling conflicts, carrying
// alternatives the client can rebook in one tap.
type ConflictResponse struct {
	Error       string             `json:"error"`
	Reason      string             `json:"reason"`
	Suggestions []coach.Suggestion `json:"suggestions,omitempty"`
}
