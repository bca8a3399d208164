package store

import (
	"context"
	"errors"
	"time"

	perr "callerverify/internal/platform/errors"
	"callerverify/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQL is the postgres seam: a pgx pool whose statements are observed
type SQL struct {
	pool *pgxpool.Pool
	obs  *pg.Observer
}

// NewSQL wraps pool; a nil obs records nothing
func NewSQL(pool *pgxpool.Pool, obs *pg.Observer) *SQL {
	return &SQL{pool: pool, obs: obs}
}

// Exec runs a statement that returns no rows
func (s *SQL) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	tag, err := s.pool.Exec(ctx, sql, args...)
	s.obs.Observe(ctx, sql, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// QueryRow runs a statement expected to return at most one row
// the statement is observed once Scan returns
func (s *SQL) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return observedRow{
		row: s.pool.QueryRow(ctx, sql, args...),
		done: func(err error) {
			s.obs.Observe(ctx, sql, time.Since(start), err)
		},
	}
}

// Ping checks the pool can serve a statement
func (s *SQL) Ping(ctx context.Context) error {
	var one int
	return s.QueryRow(ctx, "SELECT 1").Scan(&one)
}

// Pool exposes the pgx pool for migrations
func (s *SQL) Pool() *pgxpool.Pool { return s.pool }

// Close closes the pool
func (s *SQL) Close() error {
	s.pool.Close()
	return nil
}

type observedRow struct {
	row  pgx.Row
	done func(error)
}

func (r observedRow) Scan(dst ...any) error {
	err := r.row.Scan(dst...)
	r.done(err)
	if errors.Is(err, pgx.ErrNoRows) {
		return perr.ErrNotFound
	}
	return err
}
