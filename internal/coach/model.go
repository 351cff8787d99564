package coach

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "coach not found")
	ErrSlotNotFound    = apperror.New(http.StatusNotFound, "availability slot not found")
	ErrTimeOffNotFound = apperror.New(http.StatusNotFound, "time off entry not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidDay      = apperror.New(http.StatusBadRequest, "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidWindow   = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrSlotOverlap     = apperror.New(http.StatusConflict, "availability slot overlaps an existing slot for this day")
	ErrTimesRequired   = apperror.New(http.StatusBadRequest, "start and end times are required unless full_day is set")
)

// Coach is a trainer attached to a club, bookable alongside a court.
type Coach struct {
	ID              string
	ClubID          string
	UserID          *string // linked platform account, if any
	DisplayName     string
	Bio             string
	HourlyRateCents int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WeeklySlot is one recurring working window on a day-of-week. A coach may
// have several non-overlapping slots per day (e.g. a split shift).
type WeeklySlot struct {
	ID        string
	CoachID   string
	DayOfWeek int    // 0=Sunday .. 6=Saturday
	StartTime string // "HH:MM"
	EndTime   string
	Note      *string
}

// TimeOff is a declared unavailability on a specific date, either the whole
// day or a partial blackout window.
type TimeOff struct {
	ID        string
	CoachID   string
	Date      string // "YYYY-MM-DD"
	FullDay   bool
	StartTime *string // nil when FullDay
	EndTime   *string
	Reason    *string
	CreatedAt time.Time
}

// Filter defines parameters for listing coaches.
type Filter struct {
	ClubID   string
	Page     int
	PageSize int
}
