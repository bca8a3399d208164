package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"callerverify/internal/platform/config"
	perr "callerverify/internal/platform/errors"
	"callerverify/internal/platform/testkit"
	"callerverify/internal/services/api/verify/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestStatic_OrderAndLookup(t *testing.T) {
	s := NewStatic(DefaultRecords())
	recs, err := s.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 2 || recs[0].PhoneNumber != "+15551234567" || recs[1].ClaimedName != "Jane Smith" {
		t.Fatalf("unexpected records %+v", recs)
	}

	r, ok, err := s.GetRecord(context.Background(), "+15557654321")
	if err != nil || !ok || r.ClaimedName != "Jane Smith" {
		t.Fatalf("GetRecord = %+v %v %v", r, ok, err)
	}
	if _, ok, _ := s.GetRecord(context.Background(), "+10000000000"); ok {
		t.Fatalf("expected absent record")
	}
}

func TestStatic_ListIsACopy(t *testing.T) {
	s := NewStatic(DefaultRecords())
	recs, _ := s.ListRecords(context.Background())
	recs[0].ClaimedName = "Mallory"
	again, _ := s.ListRecords(context.Background())
	if again[0].ClaimedName != "John Doe" {
		t.Fatalf("directory mutated through returned slice")
	}
}

func TestRemote_ListRecords_SendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer k3y" {
			t.Errorf("Authorization=%q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-42" {
			t.Errorf("X-Request-ID=%q", got)
		}
		_, _ = w.Write([]byte(`[{"phone_number":"+15551234567","name":"John Doe"},{"phone_number":"","name":"ghost"},{"phone_number":"+15557654321","name":"Jane Smith"}]`))
	}))
	defer srv.Close()

	d := NewRemote(RemoteOptions{Endpoint: srv.URL, APIKey: "k3y"})
	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-42")
	recs, err := d.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 2 || recs[1].PhoneNumber != "+15557654321" {
		t.Fatalf("unexpected records %+v", recs)
	}

	r, ok, err := d.GetRecord(ctx, "+15551234567")
	if err != nil || !ok || r.ClaimedName != "John Doe" {
		t.Fatalf("GetRecord = %+v %v %v", r, ok, err)
	}
}

func TestRemote_ListRecords_DropsNamelessAndDedupes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"phone_number":"+15551234567","name":"John Doe"},
			{"phone_number":"+15550000000","name":""},
			{"phone_number":"+15550000001","name":"   "},
			{"phone_number":"+15557654321","name":"Jane Smith"},
			{"phone_number":"+15551234567","name":"Johnny Doe"}
		]`))
	}))
	defer srv.Close()

	d := NewRemote(RemoteOptions{Endpoint: srv.URL})
	recs, err := d.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	want := []domain.Record{
		{PhoneNumber: "+15551234567", ClaimedName: "Johnny Doe"},
		{PhoneNumber: "+15557654321", ClaimedName: "Jane Smith"},
	}
	if len(recs) != len(want) {
		t.Fatalf("unexpected records %+v", recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, recs[i], want[i])
		}
	}

	r, ok, err := d.GetRecord(context.Background(), "+15551234567")
	if err != nil || !ok || r.ClaimedName != "Johnny Doe" {
		t.Fatalf("GetRecord = %+v %v %v", r, ok, err)
	}
	if _, ok, _ := d.GetRecord(context.Background(), "+15550000000"); ok {
		t.Fatalf("nameless record must be absent")
	}
}

func TestRemote_GeneratesRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := NewRemote(RemoteOptions{Endpoint: srv.URL}).ListRecords(context.Background()); err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(got) != 36 {
		t.Fatalf("expected a uuid request id, got %q", got)
	}
}

func TestRemote_Failures_AreDirectoryUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		},
		"decode": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		},
	}
	for name, h := range cases {
		srv := httptest.NewServer(h)
		_, err := NewRemote(RemoteOptions{Endpoint: srv.URL}).ListRecords(context.Background())
		srv.Close()
		if !domain.IsDirectoryUnavailable(err) {
			t.Fatalf("%s: expected directory failure, got %v", name, err)
		}
		if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
			t.Fatalf("%s: code=%v", name, perr.CodeOf(err))
		}
	}

	_, _, err := NewRemote(RemoteOptions{Endpoint: "http://127.0.0.1:1", Timeout: time.Second}).GetRecord(context.Background(), "+1")
	if !domain.IsDirectoryUnavailable(err) {
		t.Fatalf("unreachable: expected directory failure, got %v", err)
	}
}

func TestNewRemote_PanicsWithoutEndpoint(t *testing.T) {
	testkit.MustPanic(t, func() { NewRemote(RemoteOptions{}) })
}

func TestFromConfig_MockWithoutKey(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "")
	t.Setenv("SOLIDARITY_TECH_API_KEY", "")
	src := FromConfig(config.New(), "http://self/api/v1/directory/users")
	if src.Kind != KindMock {
		t.Fatalf("expected mock, got %+v", src)
	}
	if _, ok := Open(src).(*Static); !ok {
		t.Fatalf("expected static binding")
	}
}

func TestFromConfig_RemoteViaAlias(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "")
	t.Setenv("SOLIDARITY_TECH_API_KEY", "legacy")
	t.Setenv("DIRECTORY_URL", "")
	src := FromConfig(config.New(), "http://self/api/v1/directory/users")
	if src.Kind != KindRemote || src.APIKey != "legacy" {
		t.Fatalf("expected remote via alias, got %+v", src)
	}
	if src.Endpoint != "http://self/api/v1/directory/users" || src.Timeout != defaultTimeout {
		t.Fatalf("unexpected defaults %+v", src)
	}
	if _, ok := Open(src).(*Remote); !ok {
		t.Fatalf("expected remote binding")
	}
}

func TestFromConfig_ExplicitURL(t *testing.T) {
	t.Setenv("DIRECTORY_API_KEY", "k")
	t.Setenv("DIRECTORY_URL", "https://dir.example/users")
	t.Setenv("DIRECTORY_TIMEOUT", "2s")
	src := FromConfig(config.New(), "http://self")
	if src.Endpoint != "https://dir.example/users" || src.Timeout != 2*time.Second {
		t.Fatalf("unexpected source %+v", src)
	}
}
