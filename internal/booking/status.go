package booking

import "time"

// EffectiveStatus derives the status to display at a given instant. Stored
// terminal states win unconditionally. Non-terminal bookings roll forward
// with the clock: ongoing while the window contains now, completed once the
// window has passed. Before the window starts the stored status is returned
// as-is, so a paid booking reads confirmed rather than collapsing to
// reserved. The stored row is not modified; the sweeper persists the
// completed transition later.
func EffectiveStatus(b *Booking, now time.Time) Status {
	if b.Status.IsTerminal() {
		return b.Status
	}
	if !now.Before(b.EndTime) {
		return StatusCompleted
	}
	if !now.Before(b.StartTime) {
		return StatusOngoing
	}
	return b.Status
}

// ShouldAutoCancel reports whether an unpaid hold has run out. The expiry
// instant itself counts as expired.
func ShouldAutoCancel(b *Booking, now time.Time) bool {
	if b.Status.IsTerminal() {
		return false
	}
	if b.PaymentStatus != PaymentUnpaid {
		return false
	}
	if b.ReservationExpiresAt == nil {
		return false
	}
	return !now.Before(*b.ReservationExpiresAt)
}

// ShouldMarkCompleted reports whether a non-terminal booking's window has
// fully passed and the stored status should be finalized.
func ShouldMarkCompleted(b *Booking, now time.Time) bool {
	if b.Status.IsTerminal() {
		return false
	}
	return !now.Before(b.EndTime)
}
