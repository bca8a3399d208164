package module

import (
	"strings"
	"time"

	"callerverify/internal/platform/config"
	"callerverify/internal/services/lookupcache/service"
)

// Backends the cache can store entries in
const (
	BackendPG     = "pg"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options configures the lookup cache module
type Options struct {
	Backend        string
	TTL            time.Duration
	PurgeEvery     time.Duration
	RedisKeyPrefix string
}

// FromConfig reads options from the root config
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("LOOKUP_CACHE_")
	return Options{
		Backend:        strings.ToLower(lc.MayEnum("BACKEND", BackendPG, BackendPG, BackendRedis, BackendMemory)),
		TTL:            lc.MaySeconds("TTL_SECONDS", service.DefaultTTL),
		PurgeEvery:     lc.MayDuration("PURGE_EVERY", 10*time.Minute),
		RedisKeyPrefix: cfg.Prefix("SERVICE_REDIS_").MayString("KEY_PREFIX", "callerverify:"),
	}
}

// NeedsPG reports whether the backend needs a postgres store
func (o Options) NeedsPG() bool { return o.Backend == BackendPG }

// NeedsRedis reports whether the backend needs a redis store
func (o Options) NeedsRedis() bool { return o.Backend == BackendRedis }
