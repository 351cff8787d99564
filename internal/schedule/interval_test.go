package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func win(startHour, endHour int) TimeWindow {
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: base.Add(time.Duration(startHour) * time.Hour),
		End:   base.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeWindow
		want bool
	}{
		{"disjoint", win(9, 10), win(11, 12), false},
		{"touching endpoints do not overlap", win(9, 10), win(10, 11), false},
		{"touching reversed", win(10, 11), win(9, 10), false},
		{"partial overlap", win(9, 11), win(10, 12), true},
		{"containment", win(9, 18), win(10, 11), true},
		{"identical", win(9, 10), win(9, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	require.True(t, win(9, 18).Contains(win(10, 11)))
	require.True(t, win(9, 18).Contains(win(9, 18)))
	require.False(t, win(9, 18).Contains(win(8, 10)))
	require.False(t, win(9, 18).Contains(win(17, 19)))
}

func TestClip(t *testing.T) {
	clipped, ok := win(8, 12).Clip(win(9, 18))
	require.True(t, ok)
	require.Equal(t, win(9, 12), clipped)

	clipped, ok = win(10, 11).Clip(win(9, 18))
	require.True(t, ok)
	require.Equal(t, win(10, 11), clipped)

	_, ok = win(6, 9).Clip(win(9, 18))
	require.False(t, ok, "touching windows have no intersection")
}

func TestTimeStringOverlap(t *testing.T) {
	require.False(t, TimeStringOverlap("09:00", "10:00", "10:00", "11:00"))
	require.True(t, TimeStringOverlap("09:00", "10:30", "10:00", "11:00"))
	require.False(t, TimeStringOverlap("08:00", "09:00", "17:00", "18:00"))
	require.True(t, TimeStringOverlap("00:00", "23:59", "12:00", "12:30"))
}

func TestTimeStringContains(t *testing.T) {
	require.True(t, TimeStringContains("09:00", "18:00", "09:00", "10:00"))
	require.True(t, TimeStringContains("09:00", "18:00", "17:00", "18:00"))
	require.False(t, TimeStringContains("09:00", "18:00", "08:30", "09:30"))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:00", 0, true},
		{"09:60", 0, true},
		{"09:00:00", 0, true},
		{"9am", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidClock, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
		require.Equal(t, tt.in, FormatClock(got), "round trip %q", tt.in)
	}
}
