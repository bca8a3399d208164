// Package modkit composes api modules: shared deps, route mounting and port wiring
package modkit

import (
	"net/http"

	"callerverify/internal/modkit/httpkit"
	"callerverify/internal/modkit/module"
	str "callerverify/internal/platform/strings"
)

// Module is the contract api.go composes
type Module = module.Module

// Option adjusts how a routed module mounts
type Option func(*Mount)

// Mount is the resolved mount settings of a routed module
type Mount struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
}

// WithMiddlewares adds middleware that runs only on this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(m *Mount) { m.Mw = append(m.Mw, mw...) }
}

// Routed is embedded by modules that serve http
// it supplies Name and MountRoutes, the embedding module supplies Ports
type Routed struct {
	mount  Mount
	routes func(httpkit.Router)
}

// NewRouted resolves opts over the module's own name and prefix
func NewRouted(name, prefix string, routes func(httpkit.Router), opts ...Option) Routed {
	m := Mount{Name: name, Prefix: prefix}
	for _, o := range opts {
		o(&m)
	}
	return Routed{mount: m, routes: routes}
}

// Name returns the module name, panicking when it was configured empty
func (r Routed) Name() string { return str.MustString(r.mount.Name, "module name") }

// Prefix returns the normalized route prefix
func (r Routed) Prefix() string { return str.MustPrefix(r.mount.Prefix) }

// MountRoutes attaches the module's routes under Prefix behind its middleware
func (r Routed) MountRoutes(router httpkit.Router) {
	httpkit.MountUnder(router, r.Prefix(), r.mount.Mw, func(sub httpkit.Router) {
		if r.routes != nil {
			r.routes(sub)
		}
	})
}

// Headless is embedded by modules that only provide ports
type Headless string

// Name returns the module name
func (h Headless) Name() string { return string(h) }

// MountRoutes mounts nothing
func (Headless) MountRoutes(httpkit.Router) {}
