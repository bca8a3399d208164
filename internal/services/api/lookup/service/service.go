// Package service implements single number lookups over the resolver
package service

import (
	"context"
	"time"

	perr "callerverify/internal/platform/errors"
	"callerverify/internal/services/api/lookup/domain"
	resdom "callerverify/internal/services/resolver/domain"
)

// Service defines the lookup contract
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	resolver resdom.ResolverPort
	slot     *Slot
	now      func() time.Time
}

// New constructs a lookup service, a nil slot gets a private one
func New(resolver resdom.ResolverPort, slot *Slot) *Svc {
	if resolver == nil {
		panic("lookup.Service requires a non nil Resolver")
	}
	if slot == nil {
		slot = &Slot{}
	}
	return &Svc{resolver: resolver, slot: slot, now: time.Now}
}

// Lookup resolves phone and records it as the last resolved lookup
func (s *Svc) Lookup(ctx context.Context, phone string) (domain.LookupResult, error) {
	r, err := s.resolver.Resolve(ctx, phone)
	if err != nil {
		return domain.LookupResult{}, err
	}
	s.slot.Store(domain.LastResolved{
		PhoneNumber: phone,
		CallerName:  r.Name,
		Found:       r.Found,
		ResolvedAt:  s.now().UTC(),
	})

	out := domain.LookupResult{PhoneNumber: phone, Name: r.Name, Found: r.Found, Cached: r.Cached}
	if !r.Found {
		out.Message = domain.NameNotAvailable
	}
	return out, nil
}

// Last returns the last resolved lookup, not found when none happened or it had no name
func (s *Svc) Last(context.Context) (domain.LastResolved, error) {
	v, ok := s.slot.Load()
	if !ok || !v.Found {
		return domain.LastResolved{}, perr.NotFoundf("caller name not found or not looked up yet")
	}
	return v, nil
}
