package control

import (
	"context"
	"log"
	"time"
)

// Run polls the backend until the context is canceled: one refresh
// immediately, then one per interval. A failed refresh leaves the stores
// stale and is retried on the next tick; ticks do not wait for slow
// in-flight refreshes, the generation check in Refresh keeps late responses
// from clobbering newer state.
func (s *Service) Run(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
		log.Printf("initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go func() {
				if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
					log.Printf("poll refresh failed: %v", err)
				}
			}()
		}
	}
}
