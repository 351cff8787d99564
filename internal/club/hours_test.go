package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestEffectiveHoursWeeklyRule(t *testing.T) {
	weekly := []BusinessHourRule{
		{DayOfWeek: 1, OpenTime: str("06:00"), CloseTime: str("22:00")},
		{DayOfWeek: 2, IsClosed: true},
	}

	got := EffectiveHours("2024-01-15", time.Monday, weekly, nil)
	require.Equal(t, DayHours{Open: "06:00", Close: "22:00"}, got)

	got = EffectiveHours("2024-01-16", time.Tuesday, weekly, nil)
	require.True(t, got.Closed)

	// No rule for the weekday means closed.
	got = EffectiveHours("2024-01-17", time.Wednesday, weekly, nil)
	require.True(t, got.Closed)
}

func TestEffectiveHoursExceptionOverrides(t *testing.T) {
	weekly := []BusinessHourRule{
		{DayOfWeek: 1, OpenTime: str("06:00"), CloseTime: str("22:00")},
	}
	exceptions := []SpecialHourException{
		{Date: "2024-01-15", OpenTime: str("10:00"), CloseTime: str("14:00")},
		{Date: "2024-01-22", IsClosed: true},
	}

	// Exact-date exception wins over the weekly rule.
	got := EffectiveHours("2024-01-15", time.Monday, weekly, exceptions)
	require.Equal(t, DayHours{Open: "10:00", Close: "14:00"}, got)

	// Holiday closure.
	got = EffectiveHours("2024-01-22", time.Monday, weekly, exceptions)
	require.True(t, got.Closed)

	// Other Mondays keep the weekly rule.
	got = EffectiveHours("2024-01-08", time.Monday, weekly, exceptions)
	require.Equal(t, DayHours{Open: "06:00", Close: "22:00"}, got)
}

func TestEffectiveHoursFailsClosedOnBadRows(t *testing.T) {
	tests := []struct {
		name string
		rule BusinessHourRule
	}{
		{"nil open", BusinessHourRule{DayOfWeek: 1, CloseTime: str("22:00")}},
		{"nil close", BusinessHourRule{DayOfWeek: 1, OpenTime: str("06:00")}},
		{"unpadded clock", BusinessHourRule{DayOfWeek: 1, OpenTime: str("6:00"), CloseTime: str("22:00")}},
		{"inverted window", BusinessHourRule{DayOfWeek: 1, OpenTime: str("22:00"), CloseTime: str("06:00")}},
		{"zero-width window", BusinessHourRule{DayOfWeek: 1, OpenTime: str("09:00"), CloseTime: str("09:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveHours("2024-01-15", time.Monday, []BusinessHourRule{tt.rule}, nil)
			require.True(t, got.Closed)
		})
	}
}
