package module

import (
	"testing"

	"callerverify/internal/modkit"
)

func TestProbes_UnopenedStoresAreSkipped(t *testing.T) {
	ps := probes(modkit.Deps{})
	if len(ps) != 2 || ps[0].Name != "pg" || ps[1].Name != "redis" {
		t.Fatalf("probes = %+v", ps)
	}
	for _, p := range ps {
		if p.Check != nil {
			t.Fatalf("%s should have no check", p.Name)
		}
	}
}

func TestNew_MountsUnderMeta(t *testing.T) {
	m := New(modkit.Deps{})
	if m.Name() != "meta" || m.Prefix() != "/meta" || m.Ports() != nil {
		t.Fatalf("module = %q %q %v", m.Name(), m.Prefix(), m.Ports())
	}
}
