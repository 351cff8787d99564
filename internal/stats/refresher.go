package stats

import (
	"context"
	"log"
	"time"
)

const refreshBatchSize = 100

// Refresher recomputes dirty aggregates in the background so reads rarely
// pay the recompute cost. Reads still recompute on demand when they hit a
// dirty or stale row first.
type Refresher struct {
	repo     Repository
	service  Service
	interval time.Duration
}

func NewRefresher(repo Repository, service Service, interval time.Duration) *Refresher {
	return &Refresher{repo: repo, service: service, interval: interval}
}

// Run blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	keys, err := r.repo.ListDirty(ctx, refreshBatchSize)
	if err != nil {
		log.Printf("stats refresher: list dirty: %v", err)
		return
	}

	for _, k := range keys {
		if _, err := r.service.ForDate(ctx, k.ClubID, k.Date); err != nil {
			log.Printf("stats refresher: recompute %s %s: %v", k.ClubID, k.Date, err)
		}
	}
	if len(keys) > 0 {
		log.Printf("stats refresher: refreshed %d club-dates", len(keys))
	}
}
