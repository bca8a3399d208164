package middleware

import (
	"net/http"

	"callerverify/internal/platform/logger"
	pnet "callerverify/internal/platform/net"
)

// RequestScope copies the request id set by RequestID onto the logger
// context so logger.C(ctx) tags every line written while serving r
// must be mounted after RequestID
func RequestScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := pnet.RequestID(r.Context())
		if rid == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("X-Request-ID", rid)
		ctx := logger.WithRequest(r.Context(), rid, "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
