// Package module mounts the mock directory endpoint
package module

import (
	modkit "callerverify/internal/modkit"
	"callerverify/internal/modkit/httpkit"
	dirhttp "callerverify/internal/services/api/directory/http"
	"callerverify/internal/services/api/verify/domain"
)

// Module serves /directory/users from a Directory
type Module struct {
	modkit.Routed
}

// New constructs the mock directory module serving dir
func New(_ modkit.Deps, dir domain.Directory, opts ...modkit.Option) *Module {
	if dir == nil {
		panic("directory module requires a non nil Directory")
	}
	return &Module{Routed: modkit.NewRouted("directory", "/directory", func(r httpkit.Router) {
		dirhttp.Register(r, dir)
	}, opts...)}
}

// Ports returns nil, the mock directory exposes no ports
func (m *Module) Ports() any { return nil }
