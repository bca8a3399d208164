package service

import (
	"context"
	"time"

	"callerverify/internal/platform/logger"
)

// Sweeper periodically purges stale entries
type Sweeper struct {
	cache *Cache
	every time.Duration
}

// NewSweeper constructs a sweeper, every <= 0 makes Run return immediately
func NewSweeper(c *Cache, every time.Duration) *Sweeper {
	if c == nil {
		panic("lookupcache.Sweeper requires a non nil Cache")
	}
	return &Sweeper{cache: c, every: every}
}

// Run purges on every tick until ctx ends
// purge failures are logged and the loop keeps going
func (s *Sweeper) Run(ctx context.Context) error {
	log := logger.Named("lookupcache-sweeper")
	if s.every <= 0 {
		log.Info().Msg("sweeper disabled")
		return nil
	}
	t := time.NewTicker(s.every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			n, err := s.cache.Purge(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("purge failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("purged", n).Msg("purged stale entries")
			}
		}
	}
}
