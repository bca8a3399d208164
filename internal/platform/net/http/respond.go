// Package http writes JSON responses in the service envelope and runs the listener
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "callerverify/internal/platform/errors"
	pnet "callerverify/internal/platform/net"
)

// Envelope wraps every enveloped response, success or failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(r *stdhttp.Request, status int) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// JSON writes v as application/json with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes err as an error envelope, the status comes from its code
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	wire := perr.WireFrom(err)
	env := envelope(r, perr.HTTPStatus(err))
	env.Code, env.Error = wire.Code, wire.Message
	JSON(w, env.StatusCode, env)
}

// Response is what return style handlers produce
// a Body that is an error is written with RespondError
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error is a response whose status follows err's code
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return style handler to net/http
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		for k, vs := range resp.Header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		if err, ok := resp.Body.(error); ok && err != nil {
			RespondError(w, r, err)
			return
		}

		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		env := envelope(r, status)
		env.Data = resp.Body
		JSON(w, status, env)
	}
}
