package booking

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict     = apperror.NewWithReason(http.StatusConflict, "ALREADY_BOOKED", "time slot already booked")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrAlreadyFinal     = apperror.New(http.StatusConflict, "booking is already finalized")
	ErrAlreadyPaid      = apperror.New(http.StatusConflict, "booking is already paid")
	ErrNotPaid          = apperror.New(http.StatusConflict, "booking has not been paid")
)

// Status is the stored lifecycle state of a booking. Terminal states never
// change again; everything else is recomputed for display by EffectiveStatus.
type Status string

const (
	// StatusReserved is an unpaid hold that expires if not paid in time.
	StatusReserved Status = "reserved"
	// StatusConfirmed is a paid booking awaiting its start time.
	StatusConfirmed Status = "confirmed"

	// Terminal states.
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"

	// StatusOngoing is display-only: a confirmed booking whose window
	// contains the current instant. It is never stored.
	StatusOngoing Status = "ongoing"
)

// IsTerminal reports whether a stored status can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID        string
	CourtID   string
	CourtName string
	ClubID    string
	ClubName  string
	CoachID   *string
	CoachName *string
	UserID    string
	UserName  string

	StartTime time.Time
	EndTime   time.Time

	Status        Status
	PaymentStatus PaymentStatus
	PriceCents    int64

	// ReservationExpiresAt is set while the booking is an unpaid hold and
	// cleared on payment.
	ReservationExpiresAt *time.Time
	CancelledAt          *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Filter struct {
	UserID    string
	CourtID   string
	CoachID   string
	ClubID    string
	Status    string
	StartTime *time.Time // bookings ending at or after this instant
	EndTime   *time.Time // bookings starting at or before this instant
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
