package errors

import (
	"encoding/json"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeUpstream, http.StatusBadGateway},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCode_TextRoundTrip(t *testing.T) {
	for code, name := range codeNames {
		b, err := code.MarshalText()
		if err != nil || string(b) != name {
			t.Fatalf("MarshalText(%d) = %q, %v", code, b, err)
		}
		var back ErrorCode
		if err := back.UnmarshalText(b); err != nil || back != code {
			t.Fatalf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}

	if got := ErrorCode(9999).String(); got != "unknown" {
		t.Fatalf("out of range String = %q", got)
	}
	c := ErrorCodeDB
	_ = c.UnmarshalText([]byte("no_such_code"))
	if c != ErrorCodeUnknown {
		t.Fatalf("unknown name decoded to %v", c)
	}
}

func TestWire_JSONUsesNames(t *testing.T) {
	err := WithField(Validationf("bad phone"), "phone")
	b, _ := json.Marshal(WireFrom(err))
	want := `{"code":"validation","message":"bad phone","field":"phone"}`
	if string(b) != want {
		t.Fatalf("wire json = %s, want %s", b, want)
	}

	var w Wire
	if err := json.Unmarshal([]byte(`{"code":"not_found","message":"x"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.Code != ErrorCodeNotFound {
		t.Fatalf("decoded code = %v", w.Code)
	}
}

func TestError_Methods(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	e := Newf(ErrorCodeUpstream, "provider %d", 7)
	if e.Error() != "provider 7" || CodeOf(e) != ErrorCodeUpstream {
		t.Fatalf("Newf = %q / %v", e.Error(), CodeOf(e))
	}

	root := stderrs.New("dial refused")
	w := Wrapf(root, ErrorCodeUnavailable, "lookup %s", "cache")
	if w.Error() != "lookup cache: dial refused" {
		t.Fatalf("Wrapf render = %q", w.Error())
	}
	if !stderrs.Is(w, root) || Root(w) != root {
		t.Fatalf("wrapped cause lost")
	}
	if WireFrom(w).Message != "lookup cache" {
		t.Fatalf("wire leaked cause: %+v", WireFrom(w))
	}

	tagged := WithOp(w, "resolver.resolve")
	pe, ok := As(tagged)
	if !ok || pe.Op() != "resolver.resolve" || pe.Code() != ErrorCodeUnavailable {
		t.Fatalf("WithOp = %+v", pe)
	}
	if orig, _ := As(w); orig.Op() != "" {
		t.Fatalf("WithOp mutated the original")
	}
}

func TestForeignErrors(t *testing.T) {
	foreign := stderrs.New("plain")
	if CodeOf(foreign) != ErrorCodeUnknown || HTTPStatus(foreign) != http.StatusInternalServerError {
		t.Fatalf("foreign error classification wrong")
	}
	if WithOp(foreign, "x") != foreign || WithField(foreign, "y") != foreign {
		t.Fatalf("foreign errors should pass through untouched")
	}
	if w := WireFrom(foreign); w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom nil = %+v", w)
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}

func TestShorthands(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("no %s", "entry"), ErrorCodeNotFound},
		{Unavailablef("down"), ErrorCodeUnavailable},
		{Validationf("bad"), ErrorCodeValidation},
		{Internalf("boom"), ErrorCodeUnknown},
		{New(ErrorCodeTooManyRequests, "slow down"), ErrorCodeTooManyRequests},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%q has code %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}

	wrapped := fmt.Errorf("outer: %w", ErrNotFound)
	if !IsCode(wrapped, ErrorCodeNotFound) || HTTPStatus(wrapped) != http.StatusNotFound {
		t.Fatalf("ErrNotFound not found through fmt wrapping")
	}
}
