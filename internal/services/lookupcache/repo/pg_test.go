package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	perr "callerverify/internal/platform/errors"
	"callerverify/internal/platform/store"
	"callerverify/internal/services/lookupcache/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type tag int64

func (t tag) RowsAffected() int64 { return int64(t) }

// fakeRow scans one preset row; nil data scans to not found
type fakeRow struct {
	data []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.data == nil {
		return perr.ErrNotFound
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = r.data[i].(string)
		case *int64:
			*d = r.data[i].(int64)
		case *bool:
			*d = r.data[i].(bool)
		}
	}
	return nil
}

type fakeQ struct {
	row     []any
	err     error
	tag     int64
	lastSQL string
	args    []any
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.lastSQL, f.args = sql, args
	return tag(f.tag), f.err
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	f.lastSQL, f.args = sql, args
	return fakeRow{data: f.row, err: f.err}
}

func TestPG_Get_Outcomes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	q := &fakeQ{row: []any{"John Doe", int64(200), false}}
	e, o, err := NewPG().Bind(q).Get(ctx, "+15551234567", 100)
	if err != nil || o != domain.OutcomeHit || e.ResolvedName != "John Doe" || e.FetchedAt != 200 {
		t.Fatalf("hit = %+v %v %v", e, o, err)
	}
	if q.args[0] != "+15551234567" || q.args[1] != int64(100) {
		t.Fatalf("args = %v", q.args)
	}
	if !strings.Contains(q.lastSQL, "DELETE FROM lookup_cache") {
		t.Fatalf("get must evict in the same statement")
	}

	q = &fakeQ{row: []any{"", int64(0), true}}
	if _, o, err := NewPG().Bind(q).Get(ctx, "+1", 100); err != nil || o != domain.OutcomeEvicted {
		t.Fatalf("evicted = %v %v", o, err)
	}

	q = &fakeQ{}
	if _, o, err := NewPG().Bind(q).Get(ctx, "+1", 100); err != nil || o != domain.OutcomeMiss {
		t.Fatalf("miss = %v %v", o, err)
	}
}

func TestPG_Get_StorageErrorIsNotAHit(t *testing.T) {
	t.Parallel()

	q := &fakeQ{err: errors.New("conn closed")}
	_, o, err := NewPG().Bind(q).Get(context.Background(), "+1", 100)
	if err == nil || o == domain.OutcomeHit {
		t.Fatalf("expected error and non-hit, got %v %v", o, err)
	}
	if perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("code = %v want DB", perr.CodeOf(err))
	}
}

func TestPG_MissingTableHint(t *testing.T) {
	t.Parallel()

	q := &fakeQ{err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "42P01", Message: `relation "lookup_cache" does not exist`})}
	err := NewPG().Bind(q).Put(context.Background(), domain.Entry{PhoneNumber: "+1"})
	if err == nil || !strings.Contains(err.Error(), "SERVICE_PGSQL_MIGRATE") {
		t.Fatalf("expected migrate hint, got %v", err)
	}
	if perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("code = %v want DB", perr.CodeOf(err))
	}
}

func TestPG_PutAndPurge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	q := &fakeQ{}
	if err := NewPG().Bind(q).Put(ctx, domain.Entry{PhoneNumber: "+1", ResolvedName: "B", FetchedAt: 42}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !strings.Contains(q.lastSQL, "ON CONFLICT (phone_number) DO UPDATE") {
		t.Fatalf("put must upsert, sql=%s", q.lastSQL)
	}
	if q.args[1] != "B" || q.args[2] != int64(42) {
		t.Fatalf("put args = %v", q.args)
	}

	q = &fakeQ{tag: 3}
	n, err := NewPG().Bind(q).Purge(ctx, 99)
	if err != nil || n != 3 {
		t.Fatalf("purge = %d %v", n, err)
	}

	q = &fakeQ{err: errors.New("boom")}
	if err := NewPG().Bind(q).Put(ctx, domain.Entry{}); err == nil {
		t.Fatalf("expected put error")
	}
}

func TestMigrations_Embedded(t *testing.T) {
	t.Parallel()

	b, err := fs.ReadFile(Migrations(), "00001_lookup_cache.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if !strings.Contains(string(b), "-- +goose Up") || !strings.Contains(string(b), "lookup_cache") {
		t.Fatalf("unexpected migration body")
	}
}
