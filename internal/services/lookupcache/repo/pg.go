// Package repo provides the lookup cache storage backends
package repo

import (
	"context"

	"callerverify/internal/modkit/repokit"
	perr "callerverify/internal/platform/errors"
	"callerverify/internal/services/lookupcache/domain"
)

type binder struct{}

// NewPG constructs a repo binder for Postgres
func NewPG() repokit.Binder[domain.Repo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.Repo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// the DELETE re-evaluates its predicate on the locked row so an upsert that
// commits first is never removed; both branches are mutually exclusive
const getSQL = `
	WITH evicted AS (
		DELETE FROM lookup_cache
		WHERE phone_number = $1 AND fetched_at <= $2
		RETURNING phone_number
	)
	SELECT resolved_name, fetched_at, false AS evicted
	FROM lookup_cache
	WHERE phone_number = $1 AND fetched_at > $2
	UNION ALL
	SELECT '', 0, true FROM evicted
`

const putSQL = `
	INSERT INTO lookup_cache (phone_number, resolved_name, fetched_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (phone_number) DO UPDATE
	SET resolved_name = EXCLUDED.resolved_name,
		fetched_at = EXCLUDED.fetched_at
`

const purgeSQL = `DELETE FROM lookup_cache WHERE fetched_at <= $1`

type pgRow struct {
	name    string
	at      int64
	evicted bool
}

// Get implements domain.Repo
func (s *pg) Get(ctx context.Context, phone string, cutoff int64) (domain.Entry, domain.Outcome, error) {
	var r pgRow
	err := s.q.QueryRow(ctx, getSQL, phone, cutoff).Scan(&r.name, &r.at, &r.evicted)
	switch {
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return domain.Entry{}, domain.OutcomeMiss, nil
	case err != nil:
		return domain.Entry{}, domain.OutcomeMiss, pgError(err, "lookup_cache get")
	case r.evicted:
		return domain.Entry{}, domain.OutcomeEvicted, nil
	}
	return domain.Entry{PhoneNumber: phone, ResolvedName: r.name, FetchedAt: r.at}, domain.OutcomeHit, nil
}

// Put implements domain.Repo
func (s *pg) Put(ctx context.Context, e domain.Entry) error {
	if _, err := s.q.Exec(ctx, putSQL, e.PhoneNumber, e.ResolvedName, e.FetchedAt); err != nil {
		return pgError(err, "lookup_cache put")
	}
	return nil
}

// Purge implements domain.Repo
func (s *pg) Purge(ctx context.Context, cutoff int64) (int64, error) {
	tag, err := s.q.Exec(ctx, purgeSQL, cutoff)
	if err != nil {
		return 0, pgError(err, "lookup_cache purge")
	}
	return tag.RowsAffected(), nil
}

// sqlstateUndefinedTable is raised when the migrations have not run
const sqlstateUndefinedTable = "42P01"

func pgError(err error, op string) error {
	if perr.IsSQLState(err, sqlstateUndefinedTable) {
		op += ": table missing, run with SERVICE_PGSQL_MIGRATE=true"
	}
	return perr.FromPostgres(err, op)
}
