package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "callerverify/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func readyOf(t *testing.T, probes ...Probe) ReadyResponse {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{ServiceName: "callerverify-api", StartedAt: time.Now(), Probes: probes})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/ready", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var env struct {
		Data ReadyResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestReady_AllOkOrSkipped(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	got := readyOf(t, Probe{Name: "pg", Check: ok}, Probe{Name: "redis"})
	if got.Status != "ok" || len(got.Checks) != 2 {
		t.Fatalf("unexpected %+v", got)
	}
	if got.Checks[1].Status != "skipped" {
		t.Fatalf("redis should be skipped: %+v", got.Checks[1])
	}
}

func TestReady_FailureWins(t *testing.T) {
	bad := PingFunc(func(context.Context) error { return errors.New("connection refused") })
	ok := PingFunc(func(context.Context) error { return nil })
	got := readyOf(t, Probe{Name: "pg", Check: ok}, Probe{Name: "redis", Check: bad})
	if got.Status != StatusFail {
		t.Fatalf("status=%q", got.Status)
	}
	if got.Checks[0].Status != StatusOK || got.Checks[1].Name != "redis" || got.Checks[1].Error != "connection refused" {
		t.Fatalf("unexpected checks %+v", got.Checks)
	}
}

func TestReady_TimeoutBoundsSlowProbe(t *testing.T) {
	slow := PingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{Probes: []Probe{{Name: "pg", Check: slow}}, Timeout: 20 * time.Millisecond})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/ready", nil))
	var env struct {
		Data ReadyResponse `json:"data"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Data.Status != StatusFail || env.Data.Checks[0].Error == "" {
		t.Fatalf("slow probe should fail on deadline: %+v", env.Data)
	}
}

func TestHealthAndService(t *testing.T) {
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{ServiceName: "callerverify-api", StartedAt: time.Now().Add(-time.Minute)})

	for _, path := range []string{"/health", "/service", "/version"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("%s status=%d", path, rec.Code)
		}
	}
}
