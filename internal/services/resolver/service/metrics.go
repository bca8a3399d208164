package service

import (
	"time"

	"callerverify/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the resolver collectors
// a nil *Metrics records nothing
type Metrics struct {
	resolutions   *prometheus.CounterVec
	providerCalls *prometheus.HistogramVec
	coalescedHits prometheus.Counter
}

// NewMetrics registers the resolver collectors on reg, nil reg returns nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)
	return &Metrics{
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Resolutions by source (cache, provider, absent, error)",
		}, []string{"source"}),
		providerCalls: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "resolver",
			Name:      "provider_call_duration_seconds",
			Help:      "Lookup provider latency by outcome (ok, empty or error category)",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
		coalescedHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "resolver",
			Name:      "coalesced_total",
			Help:      "Resolutions that shared an in flight provider call",
		}),
	}
}

func (m *Metrics) resolution(source string) {
	if m != nil {
		m.resolutions.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) providerCall(outcome string, took time.Duration) {
	if m != nil {
		m.providerCalls.WithLabelValues(outcome).Observe(took.Seconds())
	}
}

func (m *Metrics) coalesced() {
	if m != nil {
		m.coalescedHits.Inc()
	}
}
