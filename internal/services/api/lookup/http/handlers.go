// Package http provides http transport for caller name lookups
package http

import (
	stdhttp "net/http"

	"callerverify/internal/modkit/httpkit"
	"callerverify/internal/platform/logger"
	"callerverify/internal/platform/net/http/bind"
	"callerverify/internal/services/api/lookup/domain"
)

// Register mounts lookup endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.lookup)
	httpkit.Get(r, "/last", h.last)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /lookup Lookup lookupName
// @Summary Resolve the caller name for a phone number
// @Tags Lookup
// @Produce json
// @Param phone_number query string true "E.164 phone number" example(+15551234567)
// @Success 200 {object} domain.LookupResult "resolution"
// @Router /lookup [get]
func (h *handlers) lookup(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[domain.PhoneQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Lookup(logger.WithRequest(r.Context(), "", q.PhoneNumber), q.PhoneNumber)
}

// swagger:route GET /lookup/last Lookup lookupLast
// @Summary Most recently resolved caller name
// @Tags Lookup
// @Produce json
// @Success 200 {object} domain.LastResolved "last lookup"
// @Router /lookup/last [get]
func (h *handlers) last(r *stdhttp.Request) (any, error) {
	return h.svc.Last(r.Context())
}
