// Package module wires identity verification into the API
package module

import (
	modkit "callerverify/internal/modkit"
	"callerverify/internal/modkit/httpkit"
	"callerverify/internal/services/api/verify/domain"
	verifyhttp "callerverify/internal/services/api/verify/http"
	verifysvc "callerverify/internal/services/api/verify/service"
	resdom "callerverify/internal/services/resolver/domain"
)

// Options configures the verify module
type Options struct {
	Concurrency int
}

// FromConfig reads VERIFY_* keys from the root config
func FromConfig(deps modkit.Deps) Options {
	return Options{Concurrency: deps.Cfg.Prefix("VERIFY_").MayInt("CONCURRENCY", 1)}
}

// Ports exposed by the verify module
type Ports struct {
	Verifier domain.VerifierPort
}

// Module serves /verify over a directory binding and the resolver
type Module struct {
	modkit.Routed
	ports Ports
}

// New constructs the verify module
func New(deps modkit.Deps, dir domain.Directory, resolver resdom.ResolverPort, o Options, opts ...modkit.Option) *Module {
	svc := verifysvc.New(dir, resolver, o.Concurrency, verifysvc.NewMetrics(deps.Metrics))
	m := &Module{ports: Ports{Verifier: svc}}
	m.Routed = modkit.NewRouted("verify", "/verify", func(r httpkit.Router) {
		verifyhttp.Register(r, m.ports.Verifier)
	}, opts...)
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
