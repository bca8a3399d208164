// Package module wires the name resolver and exposes its port
package module

import (
	"callerverify/internal/modkit"
	cachedom "callerverify/internal/services/lookupcache/domain"
	"callerverify/internal/services/resolver/domain"
	"callerverify/internal/services/resolver/service"
)

// Ports exposed by the resolver module
type Ports struct {
	Resolver domain.ResolverPort
}

// Module owns the resolver, it serves no routes
type Module struct {
	modkit.Headless
	ports Ports
}

// New constructs the resolver over the cache port and the lookup provider
func New(deps modkit.Deps, cache cachedom.CachePort, provider domain.LookupProvider) *Module {
	svc := service.New(cache, provider, service.NewMetrics(deps.Metrics))
	return &Module{Headless: "resolver", ports: Ports{Resolver: svc}}
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
