package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "callerverify/internal/platform/errors"
	phttp "callerverify/internal/platform/net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func run(h http.HandlerFunc, rid string) (*httptest.ResponseRecorder, phttp.Envelope) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimw.RequestIDKey, rid))
	rec := httptest.NewRecorder()
	h(rec, req)
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, []string{"a"})
	if rec.Code != http.StatusTeapot || rec.Header().Get("Content-Type") != "application/json; charset=utf-8" {
		t.Fatalf("code=%d ct=%q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if rec.Body.String() != "[\"a\"]\n" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestHandle_Statuses(t *testing.T) {
	cases := []struct {
		name   string
		resp   phttp.Response
		status int
		code   perr.ErrorCode
	}{
		{"ok", phttp.OK(map[string]int{"x": 1}), http.StatusOK, perr.ErrorCodeUnknown},
		{"zero status", phttp.Response{Body: "hello"}, http.StatusOK, perr.ErrorCodeUnknown},
		{"not found", phttp.Error(perr.NotFoundf("no record for %s", "+1")), http.StatusNotFound, perr.ErrorCodeNotFound},
		{"unavailable", phttp.Error(perr.Unavailablef("directory down")), http.StatusServiceUnavailable, perr.ErrorCodeUnavailable},
		{"plain error", phttp.Error(errors.New("boom")), http.StatusInternalServerError, perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		rec, env := run(phttp.Handle(func(*http.Request) phttp.Response { return tc.resp }), "rid-"+tc.name)
		if rec.Code != tc.status || env.StatusCode != tc.status || env.Status != http.StatusText(tc.status) {
			t.Fatalf("%s: code=%d env=%+v", tc.name, rec.Code, env)
		}
		if env.Code != tc.code || env.RequestID != "rid-"+tc.name {
			t.Fatalf("%s: env=%+v", tc.name, env)
		}
		if tc.status >= 400 && (env.Error == "" || env.Data != nil) {
			t.Fatalf("%s: error envelope carries data or no message: %+v", tc.name, env)
		}
	}
}

func TestHandle_Headers(t *testing.T) {
	rec, _ := run(phttp.Handle(func(*http.Request) phttp.Response {
		resp := phttp.OK("hello")
		resp.Header = http.Header{"X-Cache": {"hit"}}
		return resp
	}), "rid")
	if got := rec.Header().Get("X-Cache"); got != "hit" {
		t.Fatalf("X-Cache = %q", got)
	}
}

func TestRespondError_CodeOnTheWire(t *testing.T) {
	rec, _ := run(func(w http.ResponseWriter, r *http.Request) {
		phttp.RespondError(w, r, perr.Validationf("phone_number is required"))
	}, "rid-3")
	var raw map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &raw)
	if rec.Code != http.StatusBadRequest || raw["code"] != "validation" || raw["request_id"] != "rid-3" {
		t.Fatalf("code=%d body=%v", rec.Code, raw)
	}
}
