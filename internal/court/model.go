package court

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "court not found")
	ErrEmptyName          = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidSport       = apperror.New(http.StatusBadRequest, "invalid sport")
	ErrInvalidPrice       = apperror.New(http.StatusBadRequest, "price must be a non-negative amount of cents")
	ErrInvalidGranularity = apperror.New(http.StatusBadRequest, "granularity must be a positive number of minutes")
	ErrRuleNotFound       = apperror.New(http.StatusNotFound, "price rule not found")
)

// Sports a court can host. Stored as a plain enum column.
const (
	SportTennis    = "tennis"
	SportPadel     = "padel"
	SportBadminton = "badminton"
	SportSquash    = "squash"
	SportPickle    = "pickleball"
)

var ValidSports = []string{SportTennis, SportPadel, SportBadminton, SportSquash, SportPickle}

// Court is a bookable playing surface belonging to a club.
type Court struct {
	ID                string
	ClubID            string
	Name              string
	Sport             string
	Indoor            bool
	DefaultPriceCents int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	ClubID   string
	Sport    string
	Page     int
	PageSize int
}
