package store

import (
	"context"

	"callerverify/internal/platform/store/pg"
	"callerverify/internal/platform/store/rds"
)

// openPG dials postgres and wraps the pool in the observed sql seam
func openPG(ctx context.Context, cfg Config, s *Store) (*SQL, error) {
	pool, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
	}, s.Log)
	if err != nil {
		return nil, err
	}
	obs := pg.NewObserver(s.Log, pg.ObserverConfig{
		LogSQL: cfg.PG.LogSQL,
		SlowMs: cfg.PG.SlowQueryMs,
	}, s.Metrics)
	s.Log.Info().Str("db", pool.Config().ConnConfig.Database).Int32("max_conns", pool.Config().MaxConns).Msg("postgres connected")
	return NewSQL(pool, obs), nil
}

// openRedis opens the redis client; rds.Open pings before returning
func openRedis(ctx context.Context, cfg Config, s *Store) (*rds.Client, error) {
	c, err := rds.Open(ctx, rds.Config{
		URL:          cfg.RDS.URL,
		ClientName:   cfg.AppName,
		PoolSize:     cfg.RDS.PoolSize,
		MinIdleConns: cfg.RDS.MinIdleConns,
		DialTimeout:  cfg.RDS.DialTimeout,
		ReadTimeout:  cfg.RDS.ReadTimeout,
		WriteTimeout: cfg.RDS.WriteTimeout,
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info().Str("addr", c.Options().Addr).Int("db", c.Options().DB).Msg("redis connected")
	return c, nil
}
