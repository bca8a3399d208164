package pg

import (
	"context"
	"errors"
	"strings"
	"time"

	"callerverify/internal/platform/logger"
	"callerverify/internal/platform/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer records statement latency and logs SQL
// slow statements always log at warn, others only when LogSQL is set
type Observer struct {
	log    logger.Logger
	logSQL bool
	slow   time.Duration

	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
	slowHits *prometheus.CounterVec
}

// ObserverConfig tunes an Observer; a negative SlowMs disables slow detection
type ObserverConfig struct {
	LogSQL bool
	SlowMs int
}

// NewObserver builds an Observer, registering collectors on reg when it is not nil
func NewObserver(log logger.Logger, cfg ObserverConfig, reg prometheus.Registerer) *Observer {
	o := &Observer{
		log:    log.With().Str("component", "pg").Logger(),
		logSQL: cfg.LogSQL,
		slow:   -1,
	}
	if cfg.SlowMs >= 0 {
		o.slow = time.Duration(cfg.SlowMs) * time.Millisecond
	}
	if reg == nil {
		return o
	}
	f := promauto.With(reg)
	o.duration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: "pg",
		Name:      "statement_duration_seconds",
		Help:      "Postgres statement latency by leading verb",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"op"})
	o.failures = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "pg",
		Name:      "statement_errors_total",
		Help:      "Postgres statements that returned an error, excluding empty results",
	}, []string{"op"})
	o.slowHits = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "pg",
		Name:      "slow_statements_total",
		Help:      "Postgres statements at or above the slow threshold",
	}, []string{"op"})
	return o
}

// Observe records one finished statement
// pgx.ErrNoRows is an empty result, not a failure
func (o *Observer) Observe(ctx context.Context, sql string, elapsed time.Duration, err error) {
	if o == nil {
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
	}
	op := Op(sql)
	slow := o.slow >= 0 && elapsed >= o.slow

	if o.duration != nil {
		o.duration.WithLabelValues(op).Observe(elapsed.Seconds())
		if err != nil {
			o.failures.WithLabelValues(op).Inc()
		}
		if slow {
			o.slowHits.WithLabelValues(op).Inc()
		}
	}

	if !slow && !o.logSQL {
		return
	}
	evt := o.log.Info()
	if slow {
		evt = o.log.Warn()
	}
	evt.Ctx(ctx).
		Str("op", op).
		Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Bool("slow", slow).
		Str("sql", compact(sql)).
		Err(err).
		Msg("pg statement")
}

// Op names a statement by its leading keyword
func Op(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other"
	}
	switch v := strings.ToLower(fields[0]); v {
	case "select", "insert", "update", "delete", "with":
		return v
	default:
		return "other"
	}
}

// compact folds all whitespace runs into single spaces
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
