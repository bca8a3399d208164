// @title         callerverify API
// @version       1.0
// @description   Caller name lookups and identity verification against a directory

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callerverify/internal/core/version"
	"callerverify/internal/modkit/repokit"
	"callerverify/internal/platform/config"
	"callerverify/internal/platform/logger"
	"callerverify/internal/platform/metrics"
	phttp "callerverify/internal/platform/net/http"
	"callerverify/internal/platform/store"

	"callerverify/internal/services/api"
	lcmodule "callerverify/internal/services/lookupcache/module"
	"callerverify/internal/services/lookupcache/repo"

	"golang.org/x/sync/errgroup"
)

func main() {
	logOpts := logger.FromEnv()
	if logOpts.Service == "" {
		logOpts.Service = version.ServiceName
	}
	logger.Init(logOpts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, config.New())
	stop()
	if err != nil {
		logger.Get().Error().Err(err).Msg("callerverify api stopped")
		os.Exit(1)
	}
}

// run wires the stores, the API and the sweeper, and serves until ctx ends
func run(ctx context.Context, root config.Conf) error {
	l := logger.Get()
	apiCfg := root.Prefix("CALLERVERIFY_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")

	// only the store the cache backend needs is opened
	cacheOpts := lcmodule.FromConfig(root)
	storeCfg := store.Config{AppName: "callerverify"}
	if cacheOpts.NeedsPG() {
		storeCfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		}
	}
	if cacheOpts.NeedsRedis() {
		storeCfg.RDS = store.RedisConfig{
			Enabled:  true,
			URL:      rdsCfg.MustString("URL"),
			PoolSize: rdsCfg.MayInt("POOL_SIZE", 0),
		}
	}

	reg := metrics.NewRegistry()

	st, err := store.Open(ctx, storeCfg, store.WithLogger(*logger.Named("store")), store.WithMetrics(reg))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when a configured backend does not answer
	guardCtx, cancelGuard := context.WithTimeout(ctx, 5*time.Second)
	repokit.MustGuard(guardCtx, st)
	cancelGuard()

	if cacheOpts.NeedsPG() && pgCfg.MayBool("MIGRATE", true) {
		if err := st.Migrate(ctx, repo.Migrations()); err != nil {
			return fmt.Errorf("lookup cache migrations: %w", err)
		}
	}

	// bind before mounting so the mock directory url carries the real port
	srv := phttp.NewServer(apiCfg)
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr(), err)
	}

	mounted := api.Mount(srv.Router(), api.Options{
		Root:           root,
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Registry:       reg,
		SelfURL:        selfURL(srv.Addr()),
	})

	l.Info().
		Str("addr", srv.Addr()).
		Str("version", version.Info().Version).
		Str("cache_backend", cacheOpts.Backend).
		Dur("cache_ttl", cacheOpts.TTL).
		Msg("callerverify api starting")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		if err := mounted.Sweeper.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	return g.Wait()
}

// selfURL turns a bound listen address into a loopback base url
func selfURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
