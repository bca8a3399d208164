package module

import (
	"context"
	"testing"

	"callerverify/internal/modkit"
	"callerverify/internal/modkit/module"
	"callerverify/internal/services/resolver/domain"

	"github.com/prometheus/client_golang/prometheus"
)

type mapCache map[string]string

func (c mapCache) Get(_ context.Context, phone string) (string, bool, error) {
	n, ok := c[phone]
	return n, ok, nil
}

func (c mapCache) Put(_ context.Context, phone, name string) error {
	c[phone] = name
	return nil
}

type oneName string

func (n oneName) Lookup(_ context.Context, _ string) (domain.CallerInfo, error) {
	return domain.CallerInfo{CallerName: string(n)}, nil
}

func TestModule_ExposesResolver(t *testing.T) {
	cache := mapCache{}
	m := New(modkit.Deps{Metrics: prometheus.NewRegistry()}, cache, oneName("Jane Roe"))

	if m.Name() != "resolver" {
		t.Fatalf("name = %q", m.Name())
	}
	r := module.MustPortsOf[domain.ResolverPort](m)
	res, err := r.Resolve(context.Background(), "+15550001111")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Name != "Jane Roe" || cache["+15550001111"] != "Jane Roe" {
		t.Fatalf("res=%+v cache=%v", res, cache)
	}
}
