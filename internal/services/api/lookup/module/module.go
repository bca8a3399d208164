// Package module wires caller name lookups into the API
package module

import (
	modkit "callerverify/internal/modkit"
	"callerverify/internal/modkit/httpkit"
	"callerverify/internal/services/api/lookup/domain"
	lookuphttp "callerverify/internal/services/api/lookup/http"
	lookupsvc "callerverify/internal/services/api/lookup/service"
	resdom "callerverify/internal/services/resolver/domain"
)

// Ports exposed by the lookup module
type Ports struct {
	Lookup domain.ServicePort
}

// Module serves /lookup over the resolver
type Module struct {
	modkit.Routed
	ports Ports
}

// New constructs the lookup module over the resolver port
func New(_ modkit.Deps, resolver resdom.ResolverPort, opts ...modkit.Option) *Module {
	m := &Module{ports: Ports{Lookup: lookupsvc.New(resolver, &lookupsvc.Slot{})}}
	m.Routed = modkit.NewRouted("lookup", "/lookup", func(r httpkit.Router) {
		lookuphttp.Register(r, m.ports.Lookup)
	}, opts...)
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
