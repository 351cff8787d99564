package schedule

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrInvalidFormat     = apperror.NewWithReason(http.StatusBadRequest, "INVALID_FORMAT", "date must be formatted as YYYY-MM-DD")
	ErrInvalidDateValues = apperror.NewWithReason(http.StatusBadRequest, "INVALID_DATE_VALUES", "date has an out-of-range month or day")
	ErrInvalidTimezone   = apperror.NewWithReason(http.StatusBadRequest, "INVALID_TIMEZONE", "timezone must be a valid IANA zone name")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayWindow holds the UTC instants bounding one local calendar day:
// 00:00:00.000 and 23:59:59.999 local wall-clock time.
type DayWindow struct {
	StartOfDay time.Time
	EndOfDay   time.Time
}

// IsValidIANATimezone reports whether name is a loadable IANA zone name.
// Fixed-offset spellings like "UTC+2" or "GMT+2" are not IANA names and are
// rejected, as is the process-dependent "Local".
func IsValidIANATimezone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// ParseDate validates a "YYYY-MM-DD" string and returns its components.
// Day-of-month values past the month's length are rejected rather than
// rolled over into the next month.
func ParseDate(date string) (year int, month time.Month, day int, err error) {
	if !datePattern.MatchString(date) {
		return 0, 0, 0, ErrInvalidFormat
	}

	year, _ = strconv.Atoi(date[0:4])
	m, _ := strconv.Atoi(date[5:7])
	day, _ = strconv.Atoi(date[8:10])

	if m < 1 || m > 12 || day < 1 || day > daysInMonth(year, time.Month(m)) {
		return 0, 0, 0, ErrInvalidDateValues
	}

	return year, time.Month(m), day, nil
}

// DayRange converts a local calendar date in the given timezone to its UTC
// [StartOfDay, EndOfDay] bounds. The UTC offset is resolved independently for
// each bound, so the two may differ when a DST transition falls on the date.
func DayRange(date string, timezone string) (DayWindow, error) {
	year, month, day, err := ParseDate(date)
	if err != nil {
		return DayWindow{}, err
	}

	loc, err := LoadTimezone(timezone)
	if err != nil {
		return DayWindow{}, err
	}

	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day, 23, 59, 59, 999_000_000, loc)

	return DayWindow{StartOfDay: start.UTC(), EndOfDay: end.UTC()}, nil
}

// LoadTimezone loads an IANA zone, mapping failures to ErrInvalidTimezone.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// daysInMonth normalizes day 0 of the following month to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
