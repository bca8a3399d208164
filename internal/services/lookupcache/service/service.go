// Package service implements the TTL lookup cache over a storage repo
package service

import (
	"context"
	"time"

	"callerverify/internal/platform/logger"
	"callerverify/internal/services/lookupcache/domain"
)

// DefaultTTL applies when Config.TTL is not positive
const DefaultTTL = time.Hour

// Config for the cache
type Config struct {
	TTL time.Duration
	// Now is the clock, defaults to time.Now
	Now func() time.Time
}

// Cache implements domain.CachePort
type Cache struct {
	repo    domain.Repo
	ttl     time.Duration
	now     func() time.Time
	metrics *Metrics
}

// New constructs the cache over repo
// m may be nil
func New(repo domain.Repo, cfg Config, m *Metrics) *Cache {
	if repo == nil {
		panic("lookupcache.Cache requires a non nil Repo")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Cache{repo: repo, ttl: cfg.TTL, now: cfg.Now, metrics: m}
}

// TTL returns the freshness window
func (c *Cache) TTL() time.Duration { return c.ttl }

// cutoff is the newest fetched_at that is already stale
// fresh iff now - fetched_at < ttl, i.e. fetched_at > now - ttl
func (c *Cache) cutoff() int64 {
	return c.now().Unix() - int64(c.ttl/time.Second)
}

// Get returns the cached name when a fresh entry exists
// a stale entry is evicted by the repo and reported absent
// storage failures come back as domain.Unavailable and never as a hit
func (c *Cache) Get(ctx context.Context, phone string) (string, bool, error) {
	e, outcome, err := c.repo.Get(ctx, phone, c.cutoff())
	if err != nil {
		c.metrics.storageFailure("get")
		return "", false, domain.Unavailable(err, "get")
	}
	c.metrics.outcome(outcome)
	if outcome == domain.OutcomeEvicted {
		logger.C(ctx).Debug().Str("phone_number", phone).Msg("lookupcache: evicted stale entry")
	}
	if outcome != domain.OutcomeHit {
		return "", false, nil
	}
	return e.ResolvedName, true, nil
}

// Put upserts name for phone stamped with the current time
func (c *Cache) Put(ctx context.Context, phone, name string) error {
	err := c.repo.Put(ctx, domain.Entry{
		PhoneNumber:  phone,
		ResolvedName: name,
		FetchedAt:    c.now().Unix(),
	})
	if err != nil {
		c.metrics.storageFailure("put")
		return domain.Unavailable(err, "put")
	}
	return nil
}

// Purge physically removes stale entries
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	n, err := c.repo.Purge(ctx, c.cutoff())
	if err != nil {
		c.metrics.storageFailure("purge")
		return 0, domain.Unavailable(err, "purge")
	}
	c.metrics.purged(n)
	return n, nil
}
