package domain

import "context"

// Repo is the durable storage behind the cache
// cutoff is the unix second at or below which an entry is stale
type Repo interface {
	// Get returns the entry when fresh and removes it when stale, atomically per key
	Get(ctx context.Context, phone string, cutoff int64) (Entry, Outcome, error)

	// Put upserts e, last write wins
	Put(ctx context.Context, e Entry) error

	// Purge removes every stale entry and reports how many went away
	Purge(ctx context.Context, cutoff int64) (int64, error)
}

// CachePort is what the resolver consumes
type CachePort interface {
	Get(ctx context.Context, phone string) (name string, ok bool, err error)
	Put(ctx context.Context, phone, name string) error
}
