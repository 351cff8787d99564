package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

const defaultPrice = int64(2000)

func rule(day int, start, end string, price int64) Rule {
	return Rule{DayOfWeek: day, StartTime: start, EndTime: end, PriceCents: price}
}

func TestResolveFallback(t *testing.T) {
	// No rules at all.
	require.Equal(t, defaultPrice, Resolve(nil, defaultPrice, time.Monday, "10:00", "11:00"))

	// Rules exist but none matches the slot.
	rules := []Rule{
		rule(2, "09:00", "18:00", 3000), // wrong weekday
		rule(1, "17:00", "22:00", 3500), // right day, no containment
	}
	require.Equal(t, defaultPrice, Resolve(rules, defaultPrice, time.Monday, "10:00", "11:00"))
}

func TestResolveContainment(t *testing.T) {
	rules := []Rule{rule(1, "09:00", "18:00", 3000)}

	// Fully contained slot.
	require.Equal(t, int64(3000), Resolve(rules, defaultPrice, time.Monday, "09:00", "10:00"))
	require.Equal(t, int64(3000), Resolve(rules, defaultPrice, time.Monday, "17:00", "18:00"))

	// Slot sticking out of the rule window falls back.
	require.Equal(t, defaultPrice, Resolve(rules, defaultPrice, time.Monday, "17:30", "18:30"))
	require.Equal(t, defaultPrice, Resolve(rules, defaultPrice, time.Monday, "08:30", "09:30"))
}

func TestResolveTieBreakNarrowerWins(t *testing.T) {
	rules := []Rule{
		rule(1, "06:00", "22:00", 2500), // broad all-day rule
		rule(1, "17:00", "21:00", 4000), // narrower evening peak rule
	}

	require.Equal(t, int64(4000), Resolve(rules, defaultPrice, time.Monday, "18:00", "19:00"))
	require.Equal(t, int64(2500), Resolve(rules, defaultPrice, time.Monday, "10:00", "11:00"))

	// Order of the rule slice must not matter.
	reversed := []Rule{rules[1], rules[0]}
	require.Equal(t, int64(4000), Resolve(reversed, defaultPrice, time.Monday, "18:00", "19:00"))
}

func TestResolveTieBreakLaterStartWins(t *testing.T) {
	// Equal widths overlapping on 12:00-14:00; the later start is more specific.
	rules := []Rule{
		rule(1, "10:00", "14:00", 2800),
		rule(1, "12:00", "16:00", 3200),
	}

	require.Equal(t, int64(3200), Resolve(rules, defaultPrice, time.Monday, "12:00", "14:00"))

	reversed := []Rule{rules[1], rules[0]}
	require.Equal(t, int64(3200), Resolve(reversed, defaultPrice, time.Monday, "12:00", "14:00"))
}

func TestResolveSkipsMalformedRules(t *testing.T) {
	rules := []Rule{
		rule(1, "9:00", "18:00", 3000),  // missing zero padding
		rule(1, "18:00", "09:00", 3000), // inverted window
		rule(1, "09:00", "18:00", -50),  // negative price
		rule(7, "09:00", "18:00", 3000), // weekday out of range
	}

	// Every rule is broken, so the default applies rather than a crash.
	require.Equal(t, defaultPrice, Resolve(rules, defaultPrice, time.Monday, "10:00", "11:00"))
}

func TestResolveForWindow(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	rules := []Rule{rule(1, "17:00", "21:00", 4000)}

	// 2024-01-15 is a Monday; 15:00 UTC is 17:00 in Kyiv (UTC+2).
	w := schedule.TimeWindow{
		Start: time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC),
	}
	require.Equal(t, int64(4000), ResolveForWindow(rules, defaultPrice, w, loc))

	// The same instants evaluated in UTC miss the evening rule.
	require.Equal(t, defaultPrice, ResolveForWindow(rules, defaultPrice, w, time.UTC))
}
