// Package module wires the lookup cache and its sweeper and exposes their ports
package module

import (
	"callerverify/internal/modkit"
	"callerverify/internal/modkit/repokit"
	"callerverify/internal/platform/logger"
	"callerverify/internal/services/lookupcache/domain"
	"callerverify/internal/services/lookupcache/repo"
	"callerverify/internal/services/lookupcache/service"
)

// Ports exposed by the lookup cache module
type Ports struct {
	Cache   domain.CachePort
	Sweeper *service.Sweeper
}

// Module owns the cache and its sweeper, it serves no routes
type Module struct {
	modkit.Headless
	opts  Options
	ports Ports
}

// New constructs the lookup cache module on the configured backend
// it panics when the backend's store is not open
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Backend != "" {
		opts.Backend = overrides.Backend
	}
	if overrides.TTL > 0 {
		opts.TTL = overrides.TTL
	}
	if overrides.PurgeEvery != 0 {
		opts.PurgeEvery = overrides.PurgeEvery
	}
	if overrides.RedisKeyPrefix != "" {
		opts.RedisKeyPrefix = overrides.RedisKeyPrefix
	}

	log := logger.Named("lookupcache")

	var r domain.Repo
	switch opts.Backend {
	case BackendPG:
		if deps.PG == nil {
			panic("lookupcache: pg backend requires deps.PG")
		}
		r = repokit.MustBind(repo.NewPG(), deps.PG)
	case BackendRedis:
		if deps.RDS == nil {
			panic("lookupcache: redis backend requires deps.RDS")
		}
		r = repo.NewRedis(deps.RDS.Client, opts.RedisKeyPrefix, opts.TTL)
	default:
		log.Warn().Msg("memory backend selected, cached names will not survive a restart")
		r = repo.NewMemory()
	}

	cache := service.New(r, service.Config{TTL: opts.TTL}, service.NewMetrics(deps.Metrics))
	log.Info().Str("backend", opts.Backend).Dur("ttl", cache.TTL()).Dur("purge_every", opts.PurgeEvery).Msg("lookup cache ready")

	return &Module{
		Headless: "lookupcache",
		opts:     opts,
		ports: Ports{
			Cache:   cache,
			Sweeper: service.NewSweeper(cache, opts.PurgeEvery),
		},
	}
}

// Options returns the effective options
func (m *Module) Options() Options { return m.opts }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
