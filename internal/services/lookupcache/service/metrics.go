package service

import (
	"callerverify/internal/platform/metrics"
	"callerverify/internal/services/lookupcache/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the lookup cache collectors
// a nil *Metrics records nothing
type Metrics struct {
	lookups     *prometheus.CounterVec
	unavailable *prometheus.CounterVec
	purgedTotal prometheus.Counter
}

// NewMetrics registers the cache collectors on reg, nil reg returns nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)
	return &Metrics{
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "lookup_cache",
			Name:      "lookups_total",
			Help:      "Cache reads by outcome (hit, miss, evicted)",
		}, []string{"outcome"}),
		unavailable: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "lookup_cache",
			Name:      "unavailable_total",
			Help:      "Storage failures by operation",
		}, []string{"op"}),
		purgedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "lookup_cache",
			Name:      "purged_total",
			Help:      "Stale entries removed by the sweeper",
		}),
	}
}

func (m *Metrics) outcome(o domain.Outcome) {
	if m != nil {
		m.lookups.WithLabelValues(o.String()).Inc()
	}
}

func (m *Metrics) storageFailure(op string) {
	if m != nil {
		m.unavailable.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) purged(n int64) {
	if m != nil && n > 0 {
		m.purgedTotal.Add(float64(n))
	}
}
