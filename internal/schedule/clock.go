package schedule

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var ErrInvalidClock = apperror.NewWithReason(http.StatusBadRequest, "INVALID_TIME", "time must be a zero-padded 24-hour HH:MM string")

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ParseClock converts a zero-padded 24-hour "HH:MM" string to minutes since
// local midnight. AM/PM and seconds are not accepted.
func ParseClock(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, ErrInvalidClock
	}
	h, _ := strconv.Atoi(s[0:2])
	m, _ := strconv.Atoi(s[3:5])
	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// At returns the instant of the given wall-clock minutes on a calendar date in
// loc. Offsets are resolved per instant, so stepping across a DST transition
// keeps slots aligned to the local wall clock.
func At(year int, month time.Month, day int, minutes int, loc *time.Location) time.Time {
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, loc)
}
