package stats

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var ErrInvalidRange = apperror.New(http.StatusBadRequest, "from must not be after to")

// ClubDailyStats is the cached aggregate for one club and one local date.
// Rows are recomputed lazily: bookings mark them dirty, readers refresh them.
type ClubDailyStats struct {
	ID     string
	ClubID string
	Date   string // "YYYY-MM-DD" in the club's timezone

	TotalBookings  int
	CancelledCount int
	NoShowCount    int

	// BookedMinutes sums occupying bookings clipped to the local day.
	BookedMinutes int
	// OpenCourtMinutes is open minutes per court times the court count.
	OpenCourtMinutes int
	// OccupancyRate is BookedMinutes / OpenCourtMinutes, 0 when closed.
	OccupancyRate float64

	RevenueCents int64

	Dirty      bool
	ComputedAt time.Time
}

// DirtyKey identifies a club-date whose aggregate needs recomputation.
type DirtyKey struct {
	ClubID string
	Date   string
}
