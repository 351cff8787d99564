package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedBooking(status Status, start, end time.Time) *Booking {
	return &Booking{
		Status:        status,
		PaymentStatus: PaymentPaid,
		StartTime:     start,
		EndTime:       end,
	}
}

func TestEffectiveStatus(t *testing.T) {
	start := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name   string
		status Status
		now    time.Time
		want   Status
	}{
		{"confirmed before start", StatusConfirmed, start.Add(-time.Minute), StatusConfirmed},
		{"ongoing at start instant", StatusConfirmed, start, StatusOngoing},
		{"ongoing mid window", StatusConfirmed, start.Add(30 * time.Minute), StatusOngoing},
		{"completed at end instant", StatusConfirmed, end, StatusCompleted},
		{"completed after end", StatusConfirmed, end.Add(time.Hour), StatusCompleted},
		{"reserved rolls forward too", StatusReserved, end.Add(time.Minute), StatusCompleted},
		{"cancelled stays cancelled mid window", StatusCancelled, start.Add(30 * time.Minute), StatusCancelled},
		{"cancelled stays cancelled after end", StatusCancelled, end.Add(time.Hour), StatusCancelled},
		{"no_show never becomes completed", StatusNoShow, end.Add(time.Hour), StatusNoShow},
		{"completed is idempotent", StatusCompleted, end.Add(time.Hour), StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fixedBooking(tt.status, start, end)
			assert.Equal(t, tt.want, EffectiveStatus(b, tt.now))
		})
	}
}

func TestShouldAutoCancel(t *testing.T) {
	start := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	expiry := start.Add(-30 * time.Minute)

	base := func() *Booking {
		b := fixedBooking(StatusReserved, start, start.Add(time.Hour))
		b.PaymentStatus = PaymentUnpaid
		b.ReservationExpiresAt = &expiry
		return b
	}

	t.Run("before expiry keeps the hold", func(t *testing.T) {
		assert.False(t, ShouldAutoCancel(base(), expiry.Add(-time.Second)))
	})

	t.Run("expiry instant itself expires", func(t *testing.T) {
		assert.True(t, ShouldAutoCancel(base(), expiry))
	})

	t.Run("after expiry expires", func(t *testing.T) {
		assert.True(t, ShouldAutoCancel(base(), expiry.Add(time.Minute)))
	})

	t.Run("paid holds never expire", func(t *testing.T) {
		b := base()
		b.PaymentStatus = PaymentPaid
		assert.False(t, ShouldAutoCancel(b, expiry.Add(time.Hour)))
	})

	t.Run("no expiry set means no auto cancel", func(t *testing.T) {
		b := base()
		b.ReservationExpiresAt = nil
		assert.False(t, ShouldAutoCancel(b, expiry.Add(time.Hour)))
	})

	t.Run("terminal bookings are left alone", func(t *testing.T) {
		b := base()
		b.Status = StatusCancelled
		assert.False(t, ShouldAutoCancel(b, expiry.Add(time.Hour)))
	})
}

func TestShouldMarkCompleted(t *testing.T) {
	start := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.False(t, ShouldMarkCompleted(fixedBooking(StatusConfirmed, start, end), end.Add(-time.Second)))
	assert.True(t, ShouldMarkCompleted(fixedBooking(StatusConfirmed, start, end), end))
	assert.True(t, ShouldMarkCompleted(fixedBooking(StatusReserved, start, end), end.Add(time.Hour)))
	assert.False(t, ShouldMarkCompleted(fixedBooking(StatusNoShow, start, end), end.Add(time.Hour)))
	assert.False(t, ShouldMarkCompleted(fixedBooking(StatusCancelled, start, end), end.Add(time.Hour)))
}
