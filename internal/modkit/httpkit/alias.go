// Package httpkit is what modules mount routes with: the router seam,
// enveloped handler adapters and the shared middleware stack
package httpkit

import (
	"net/http"

	phttp "callerverify/internal/platform/net/http"
)

// Router is the platform router seam
type Router = phttp.Router

// Handler is the platform handler type
type Handler = phttp.Handler

// Call adapts fn to a Handler that writes the envelope
// a returned phttp.Response is written as is, any other value is wrapped as 200 data
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
