package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayRangeFixedOffsets(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timezone  string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Kyiv winter (UTC+2)",
			date:      "2024-01-15",
			timezone:  "Europe/Kyiv",
			wantStart: "2024-01-14T22:00:00Z",
			wantEnd:   "2024-01-15T21:59:59.999Z",
		},
		{
			name:      "Kyiv summer (UTC+3)",
			date:      "2024-07-15",
			timezone:  "Europe/Kyiv",
			wantStart: "2024-07-14T21:00:00Z",
			wantEnd:   "2024-07-15T20:59:59.999Z",
		},
		{
			name:      "UTC itself",
			date:      "2024-03-01",
			timezone:  "UTC",
			wantStart: "2024-03-01T00:00:00Z",
			wantEnd:   "2024-03-01T23:59:59.999Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayRange(tt.date, tt.timezone)
			require.NoError(t, err)

			wantStart, err := time.Parse(time.RFC3339Nano, tt.wantStart)
			require.NoError(t, err)
			wantEnd, err := time.Parse(time.RFC3339Nano, tt.wantEnd)
			require.NoError(t, err)

			require.True(t, got.StartOfDay.Equal(wantStart), "start: got %v want %v", got.StartOfDay, wantStart)
			require.True(t, got.EndOfDay.Equal(wantEnd), "end: got %v want %v", got.EndOfDay, wantEnd)
		})
	}
}

func TestDayRangeSpanInvariant(t *testing.T) {
	// Without a DST transition on the date, the span is exactly 24h minus 1ms.
	const wantSpan = 24*time.Hour - time.Millisecond

	dates := []struct {
		date     string
		timezone string
	}{
		{"2024-01-15", "Europe/Kyiv"},
		{"2024-07-15", "America/New_York"},
		{"2024-05-20", "Asia/Taipei"},
		{"2024-11-02", "UTC"},
	}

	for _, d := range dates {
		got, err := DayRange(d.date, d.timezone)
		require.NoError(t, err)
		require.Equal(t, wantSpan, got.EndOfDay.Sub(got.StartOfDay), "%s in %s", d.date, d.timezone)
	}
}

func TestDayRangeDST(t *testing.T) {
	// US spring forward 2024-03-10: the local day loses an hour.
	got, err := DayRange("2024-03-10", "America/New_York")
	require.NoError(t, err)
	require.Equal(t, 23*time.Hour-time.Millisecond, got.EndOfDay.Sub(got.StartOfDay))

	// Fall back 2024-11-03: the local day gains an hour.
	got, err = DayRange("2024-11-03", "America/New_York")
	require.NoError(t, err)
	require.Equal(t, 25*time.Hour-time.Millisecond, got.EndOfDay.Sub(got.StartOfDay))
}

func TestDayRangeValidation(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"slashes", "2024/01/15", ErrInvalidFormat},
		{"single-digit month", "2024-1-15", ErrInvalidFormat},
		{"garbage", "not-a-date", ErrInvalidFormat},
		{"month 13", "2024-13-01", ErrInvalidDateValues},
		{"month 0", "2024-00-15", ErrInvalidDateValues},
		{"day 0", "2024-06-00", ErrInvalidDateValues},
		{"Feb 30 does not roll over", "2024-02-30", ErrInvalidDateValues},
		{"Apr 31", "2024-04-31", ErrInvalidDateValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DayRange(tt.date, "Europe/Kyiv")
			require.True(t, errors.Is(err, tt.wantErr), "got %v want %v", err, tt.wantErr)
		})
	}

	// Leap-year Feb 29 is valid.
	_, err := DayRange("2024-02-29", "Europe/Kyiv")
	require.NoError(t, err)
	_, err = DayRange("2023-02-29", "Europe/Kyiv")
	require.ErrorIs(t, err, ErrInvalidDateValues)
}

func TestDayRangeTimezoneValidation(t *testing.T) {
	for _, tz := range []string{"UTC+2", "GMT+2", "", "Local", "Not/AZone"} {
		_, err := DayRange("2024-01-15", tz)
		require.ErrorIs(t, err, ErrInvalidTimezone, "timezone %q", tz)
		require.False(t, IsValidIANATimezone(tz), "timezone %q", tz)
	}

	for _, tz := range []string{"UTC", "Europe/Kyiv", "America/New_York", "Etc/GMT+2"} {
		require.True(t, IsValidIANATimezone(tz), "timezone %q", tz)
	}
}
