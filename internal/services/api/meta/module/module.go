// Package module mounts the meta endpoints
package module

import (
	"time"

	"callerverify/internal/core/version"
	modkit "callerverify/internal/modkit"
	"callerverify/internal/modkit/httpkit"

	metahttp "callerverify/internal/services/api/meta/http"
)

// Module serves /meta
type Module struct {
	modkit.Routed
}

// New constructs the meta module; readiness probes the stores present in deps
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	d := metahttp.Deps{
		ServiceName: version.ServiceName,
		StartedAt:   time.Now(),
		Probes:      probes(deps),
	}
	return &Module{Routed: modkit.NewRouted("meta", "/meta", func(r httpkit.Router) {
		metahttp.Register(r, d)
	}, opts...)}
}

// probes lists the stores, one the cache backend did not open reports skipped
func probes(deps modkit.Deps) []metahttp.Probe {
	pg := metahttp.Probe{Name: "pg"}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		pg.Check = p
	}
	rd := metahttp.Probe{Name: "redis"}
	if deps.RDS != nil {
		rd.Check = metahttp.PingFunc(deps.RDS.Health)
	}
	return []metahttp.Probe{pg, rd}
}

// Ports returns nil, meta exposes no ports
func (m *Module) Ports() any { return nil }
