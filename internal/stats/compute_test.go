package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

func utcDay(year int, month time.Month, day int) schedule.TimeWindow {
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return schedule.TimeWindow{Start: start, End: start.Add(24 * time.Hour)}
}

func row(start, end time.Time, status, payment string, price int64) BookingRow {
	return BookingRow{Start: start, End: end, Status: status, PaymentStatus: payment, PriceCents: price}
}

func TestComputeEmptyDay(t *testing.T) {
	// 06:00-22:00 across 4 courts.
	out := Compute(ComputeInput{Day: utcDay(2024, 1, 15), OpenMinutes: 960, CourtCount: 4})

	assert.Equal(t, 0, out.TotalBookings)
	assert.Equal(t, 0, out.BookedMinutes)
	assert.Equal(t, 3840, out.OpenCourtMinutes)
	assert.Equal(t, 0.0, out.OccupancyRate)
}

func TestComputeCountsAndOccupancy(t *testing.T) {
	day := utcDay(2024, 1, 15)
	at := func(h int) time.Time { return day.Start.Add(time.Duration(h) * time.Hour) }

	out := Compute(ComputeInput{
		Day:         day,
		OpenMinutes: 960,
		CourtCount:  2,
		Bookings: []BookingRow{
			row(at(10), at(11), "confirmed", "paid", 4000),
			row(at(11), at(13), "completed", "paid", 8000),
			row(at(14), at(15), "reserved", "unpaid", 4000),
			row(at(16), at(17), "cancelled", "refunded", 4000),
			row(at(18), at(19), "no_show", "paid", 4000),
		},
	})

	assert.Equal(t, 5, out.TotalBookings)
	assert.Equal(t, 1, out.CancelledCount)
	assert.Equal(t, 1, out.NoShowCount)
	// Cancelled freed its slot; everything else counts.
	assert.Equal(t, 60+120+60+60, out.BookedMinutes)
	assert.Equal(t, 1920, out.OpenCourtMinutes)
	assert.InDelta(t, 300.0/1920.0, out.OccupancyRate, 1e-9)
	// Unpaid holds and refunds earn nothing; no-shows keep the charge.
	assert.Equal(t, int64(4000+8000+4000), out.RevenueCents)
}

func TestComputeClipsMidnightCrossings(t *testing.T) {
	day := utcDay(2024, 1, 15)

	out := Compute(ComputeInput{
		Day:         day,
		OpenMinutes: 1440,
		CourtCount:  1,
		Bookings: []BookingRow{
			// 23:00 on the 14th to 01:00 on the 15th: only one hour lands here.
			row(day.Start.Add(-time.Hour), day.Start.Add(time.Hour), "completed", "paid", 6000),
			// Entirely on the previous day: contributes nothing but the count.
			row(day.Start.Add(-3*time.Hour), day.Start.Add(-2*time.Hour), "completed", "paid", 6000),
		},
	})

	assert.Equal(t, 2, out.TotalBookings)
	assert.Equal(t, 60, out.BookedMinutes)
}

func TestComputeClosedDayHasZeroOccupancy(t *testing.T) {
	day := utcDay(2024, 1, 15)

	out := Compute(ComputeInput{
		Day:         day,
		OpenMinutes: 0,
		CourtCount:  3,
		Bookings: []BookingRow{
			row(day.Start.Add(10*time.Hour), day.Start.Add(11*time.Hour), "confirmed", "paid", 4000),
		},
	})

	assert.Equal(t, 60, out.BookedMinutes)
	assert.Equal(t, 0, out.OpenCourtMinutes)
	assert.Equal(t, 0.0, out.OccupancyRate)
}
