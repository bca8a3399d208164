// Package net holds request scoped helpers shared by http code and outbound clients
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID returns the id chi's RequestID middleware stored on ctx, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
