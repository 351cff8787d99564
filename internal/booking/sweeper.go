package booking

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically finalizes bookings the clock has decided for us:
// unpaid holds past their expiry become cancelled, and bookings whose window
// has passed become completed.
type Sweeper struct {
	repo     Repository
	interval time.Duration
}

func NewSweeper(repo Repository, interval time.Duration) *Sweeper {
	return &Sweeper{repo: repo, interval: interval}
}

// Run blocks until ctx is cancelled. One sweep fires immediately on start so
// a restart catches up on anything missed while down.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()

	expired, err := s.repo.CancelExpired(ctx, now)
	if err != nil {
		log.Printf("sweeper: cancel expired holds: %v", err)
	} else if expired > 0 {
		log.Printf("sweeper: cancelled %d expired holds", expired)
	}

	completed, err := s.repo.CompletePast(ctx, now)
	if err != nil {
		log.Printf("sweeper: complete past bookings: %v", err)
	} else if completed > 0 {
		log.Printf("sweeper: completed %d past bookings", completed)
	}
}
