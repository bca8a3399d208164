package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"callerverify/internal/platform/metrics"
	"callerverify/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, the zero value is usable
type StackOptions struct {
	// CORSOrigins defaults to any origin when empty
	CORSOrigins []string

	// Metrics instruments every request when set
	Metrics *metrics.HTTP

	// Slow marks access log lines as warn, 0 disables
	Slow time.Duration

	// Timeout bounds each request, 0 means 30s
	Timeout time.Duration
}

// CommonStack returns the middleware every /api/v1 route runs behind, outermost first
// RequestScope needs RequestID ahead of it and AccessLog needs RequestScope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestScope,
		middleware.RecoverJSON,
		o.Metrics.Middleware,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
