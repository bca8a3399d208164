package domain

import "context"

// LookupProvider is the third party caller name source
// implementations make one call per invocation and never retry
type LookupProvider interface {
	Lookup(ctx context.Context, phone string) (CallerInfo, error)
}

// ResolverPort resolves a phone number to a caller name through the cache
type ResolverPort interface {
	Resolve(ctx context.Context, phone string) (Resolution, error)
}
