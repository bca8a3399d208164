package store

import (
	"context"
	"io/fs"

	perr "callerverify/internal/platform/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Pooler is implemented by the PG seam and exposes the raw pgx pool
type Pooler interface {
	Pool() *pgxpool.Pool
}

// Migrate applies goose migrations found at the root of fsys to the PG seam
// it is a no-op error when postgres is not enabled on the store
func (s *Store) Migrate(ctx context.Context, fsys fs.FS) error {
	if s == nil || s.PG == nil {
		return perr.Newf(perr.ErrorCodeUnavailable, "store: postgres not enabled")
	}
	p, ok := s.PG.(Pooler)
	if !ok {
		return perr.Newf(perr.ErrorCodeUnavailable, "store: postgres seam does not expose a pool")
	}

	db := stdlib.OpenDBFromPool(p.Pool())
	defer func() { _ = db.Close() }()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "store: migration provider")
	}

	results, err := provider.Up(ctx)
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		s.Log.Info().
			Int64("version", r.Source.Version).
			Str("path", r.Source.Path).
			Dur("took", r.Duration).
			Bool("empty", r.Empty).
			Msg("migration applied")
	}
	if err != nil {
		return perr.FromPostgres(err, "store: migrate up")
	}
	if len(results) == 0 {
		s.Log.Debug().Msg("migrations up to date")
	}
	return nil
}
