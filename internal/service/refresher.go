package service

import (
	"context"
	"time"
)

// RefresherService periodically rebuilds the display caches so daily
// and weekly buckets stay aligned with the calendar even when no new
// calculation comes in.
type RefresherService struct {
	agg Aggregation
}

func NewRefresherService(agg Aggregation) *RefresherService {
	return &RefresherService{agg: agg}
}

// Run ticks at the given interval until ctx is canceled. A failed
// refresh is retried on the next tick; the cache is rebuildable
// derived state, so staleness is never fatal.
func (s *RefresherService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = s.agg.RefreshCaches(ctx)
		}
	}
}
