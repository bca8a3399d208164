package service

import (
	"callerverify/internal/platform/metrics"
	"callerverify/internal/services/api/verify/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the verifier collectors
// a nil *Metrics records nothing
type Metrics struct {
	verdicts      *prometheus.CounterVec
	directoryErrs *prometheus.CounterVec
}

// NewMetrics registers the verifier collectors on reg, nil reg returns nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)
	return &Metrics{
		verdicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "verify",
			Name:      "verdicts_total",
			Help:      "Verification verdicts by status",
		}, []string{"status"}),
		directoryErrs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "verify",
			Name:      "directory_failures_total",
			Help:      "Directory reads that failed or missed the number, by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) verdict(s domain.Status) {
	if m != nil {
		m.verdicts.WithLabelValues(string(s)).Inc()
	}
}

// directoryFailure records a failed directory read
// missing is set when the directory answered without the number
func (m *Metrics) directoryFailure(err error, missing bool) {
	if m == nil {
		return
	}
	reason := "error"
	switch {
	case missing:
		reason = "missing"
	case domain.IsDirectoryUnavailable(err):
		reason = "unavailable"
	}
	m.directoryErrs.WithLabelValues(reason).Inc()
}
