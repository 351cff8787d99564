package club

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "club not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidTimezone = apperror.New(http.StatusBadRequest, "timezone must be a valid IANA zone name")
	ErrInvalidDay      = apperror.New(http.StatusBadRequest, "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidHours    = apperror.New(http.StatusBadRequest, "open time must be before close time")
	ErrHoursRequired   = apperror.New(http.StatusBadRequest, "open and close times are required unless the day is closed")
	ErrExceptionExists = apperror.New(http.StatusConflict, "a special hours exception already exists for this date")
)

// Club is a physical venue under an organization. Its timezone drives all
// day-boundary and availability computations for its courts.
type Club struct {
	ID             string
	OrganizationID string
	Name           string
	Timezone       string // IANA zone name, e.g. "Europe/Kyiv"
	Address        string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BusinessHourRule is the weekly default open/close schedule for one
// day-of-week. A club has at most one rule per day (7 rows max).
type BusinessHourRule struct {
	ID        string
	ClubID    string
	DayOfWeek int     // 0=Sunday .. 6=Saturday
	OpenTime  *string // "HH:MM", nil when IsClosed
	CloseTime *string
	IsClosed  bool
}

// SpecialHourException overrides the weekly rule for one specific calendar
// date (holidays, tournaments). Looked up by exact date match before the
// weekly rule applies.
type SpecialHourException struct {
	ID        string
	ClubID    string
	Date      string // "YYYY-MM-DD"
	OpenTime  *string
	CloseTime *string
	IsClosed  bool
	CreatedAt time.Time
}

// Filter defines parameters for listing clubs.
type Filter struct {
	OrganizationID string
	Keyword        string // Search in Name or Address
	Page           int
	PageSize       int
}
