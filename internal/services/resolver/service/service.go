// Package service implements the cache first name resolver
package service

import (
	"context"
	"time"

	"callerverify/internal/platform/logger"
	cachedom "callerverify/internal/services/lookupcache/domain"
	"callerverify/internal/services/resolver/domain"

	"golang.org/x/sync/singleflight"
)

// Resolver implements domain.ResolverPort
// it is the only caller of the lookup provider
type Resolver struct {
	cache    cachedom.CachePort
	provider domain.LookupProvider
	metrics  *Metrics
	group    singleflight.Group
}

// New constructs a resolver, m may be nil
func New(cache cachedom.CachePort, provider domain.LookupProvider, m *Metrics) *Resolver {
	if cache == nil {
		panic("resolver.Resolver requires a non nil cache")
	}
	if provider == nil {
		panic("resolver.Resolver requires a non nil LookupProvider")
	}
	return &Resolver{cache: cache, provider: provider, metrics: m}
}

// Resolve returns the caller name for phone
// a fresh cache hit never reaches the provider; a miss makes exactly one
// provider call shared by every concurrent caller for the same number
// cache failures are logged and treated as misses
func (s *Resolver) Resolve(ctx context.Context, phone string) (domain.Resolution, error) {
	res, ok, cerr := s.fromCache(ctx, phone)
	if ok {
		s.metrics.resolution("cache")
		return res, nil
	}

	// the provider call runs to completion even if this caller goes away
	v, err, shared := s.group.Do(phone, func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx), phone, cerr == nil)
	})
	if shared {
		s.metrics.coalesced()
	}
	if err != nil {
		s.metrics.resolution("error")
		return domain.Resolution{}, err
	}
	res = v.(domain.Resolution)
	switch {
	case res.Cached:
		s.metrics.resolution("cache")
	case res.Found:
		s.metrics.resolution("provider")
	default:
		s.metrics.resolution("absent")
	}
	return res, nil
}

// fromCache returns the read error after logging it so callers can skip a second read
func (s *Resolver) fromCache(ctx context.Context, phone string) (domain.Resolution, bool, error) {
	name, ok, err := s.cache.Get(ctx, phone)
	if err != nil {
		ev := logger.C(ctx).Error()
		if cachedom.IsUnavailable(err) {
			ev = logger.C(ctx).Warn()
		}
		ev.Err(err).Str("phone_number", phone).Msg("cache read failed, treating as miss")
		return domain.Resolution{}, false, err
	}
	if !ok {
		return domain.Resolution{}, false, nil
	}
	return domain.Resolution{PhoneNumber: phone, Name: name, Found: true, Cached: true}, true, nil
}

// fetch runs inside the singleflight slot
// with recheck the cache is read again so a caller that missed just before
// another caller's write does not pay for a second provider call
// recheck is off when the first read failed, a cache that is down is asked once
func (s *Resolver) fetch(ctx context.Context, phone string, recheck bool) (domain.Resolution, error) {
	if recheck {
		if res, ok, _ := s.fromCache(ctx, phone); ok {
			return res, nil
		}
	}

	log := logger.C(ctx)
	start := time.Now()
	info, err := s.provider.Lookup(ctx, phone)
	took := time.Since(start)
	if err != nil {
		cat := domain.CategoryOf(err)
		s.metrics.providerCall(string(cat), took)
		log.Warn().Err(err).Str("phone_number", phone).Str("category", string(cat)).Dur("took", took).Msg("provider lookup failed")
		return domain.Resolution{}, domain.LookupFailed(err)
	}

	if info.CallerName == "" {
		// absence is never cached so the next request asks again
		s.metrics.providerCall("empty", took)
		log.Debug().Str("phone_number", phone).Dur("took", took).Msg("provider returned no caller name")
		return domain.Resolution{PhoneNumber: phone}, nil
	}

	s.metrics.providerCall("ok", took)
	if err := s.cache.Put(ctx, phone, info.CallerName); err != nil {
		log.Warn().Err(err).Str("phone_number", phone).Msg("cache write failed, continuing with resolved name")
	}
	return domain.Resolution{PhoneNumber: phone, Name: info.CallerName, Found: true}, nil
}
