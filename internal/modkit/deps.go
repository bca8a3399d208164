package modkit

import (
	"callerverify/internal/modkit/repokit"
	"callerverify/internal/platform/config"
	"callerverify/internal/platform/store/rds"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// PG and RDS are nil unless the cache backend needs them
type Deps struct {
	Cfg config.Conf
	PG  repokit.Queryer
	RDS *rds.Client

	// Metrics is where modules register their collectors; nil disables metrics
	Metrics prometheus.Registerer
}
