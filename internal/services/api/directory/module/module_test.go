package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"callerverify/internal/adapters/directory"
	modkit "callerverify/internal/modkit"
	phttp "callerverify/internal/platform/net/http"
	"callerverify/internal/platform/testkit"
	"callerverify/internal/services/api/verify/domain"

	"github.com/go-chi/chi/v5"
)

func TestUsers_BareArray(t *testing.T) {
	mux := chi.NewRouter()
	New(modkit.Deps{}, directory.NewStatic(directory.DefaultRecords())).MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directory/users", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var users []map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("expected bare array: %v (%s)", err, rec.Body.String())
	}
	if len(users) != 2 || users[0]["phone_number"] != "+15551234567" || users[0]["name"] != "John Doe" {
		t.Fatalf("unexpected users %v", users)
	}
}

// the remote binding must read what the mock endpoint serves
func TestUsers_RoundTripThroughRemote(t *testing.T) {
	mux := chi.NewRouter()
	New(modkit.Deps{}, directory.NewStatic(directory.DefaultRecords())).MountRoutes(phttp.AdaptChi(mux))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	remote := directory.NewRemote(directory.RemoteOptions{Endpoint: srv.URL + "/directory/users", APIKey: "k"})
	recs, err := remote.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 2 || recs[1] != (domain.Record{PhoneNumber: "+15557654321", ClaimedName: "Jane Smith"}) {
		t.Fatalf("unexpected records %+v", recs)
	}
}

func TestNew_PanicsWithoutDirectory(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{}, nil) })
}
