package stats

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

// BookingRow is the slice of a booking the aggregator needs. Status and
// payment values mirror the booking store's enums as plain strings so this
// package stays a pure consumer.
type BookingRow struct {
	Start         time.Time
	End           time.Time
	Status        string
	PaymentStatus string
	PriceCents    int64
}

// ComputeInput carries everything needed to aggregate one club-day.
type ComputeInput struct {
	// Day is the absolute UTC window of the local date.
	Day schedule.TimeWindow
	// OpenMinutes is the club's open span on that date, 0 when closed.
	OpenMinutes int
	CourtCount  int
	Bookings    []BookingRow
}

// Compute aggregates one day of bookings. Bookings crossing midnight are
// clipped to the day window so each minute is attributed to exactly one date.
func Compute(in ComputeInput) ClubDailyStats {
	out := ClubDailyStats{
		OpenCourtMinutes: in.OpenMinutes * in.CourtCount,
	}

	for _, b := range in.Bookings {
		out.TotalBookings++

		switch b.Status {
		case "cancelled":
			out.CancelledCount++
			continue
		case "no_show":
			// No-shows held the slot and kept the charge.
			out.NoShowCount++
		}

		w := schedule.TimeWindow{Start: b.Start, End: b.End}
		clipped, ok := w.Clip(in.Day)
		if !ok {
			continue
		}
		out.BookedMinutes += int(clipped.Duration().Minutes())

		if b.PaymentStatus == "paid" {
			out.RevenueCents += b.PriceCents
		}
	}

	if out.OpenCourtMinutes > 0 {
		out.OccupancyRate = float64(out.BookedMinutes) / float64(out.OpenCourtMinutes)
	}
	return out
}
