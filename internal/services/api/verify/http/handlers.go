// Package http provides http transport for identity verification
package http

import (
	stdhttp "net/http"

	"callerverify/internal/modkit/httpkit"
	"callerverify/internal/platform/logger"
	"callerverify/internal/platform/net/http/bind"
	"callerverify/internal/services/api/verify/domain"
)

// Register mounts verify endpoints on the given router
func Register(r httpkit.Router, s domain.VerifierPort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.one)
	httpkit.Get(r, "/all", h.all)
}

type handlers struct{ svc domain.VerifierPort }

// swagger:route GET /verify Verify verifyOne
// @Summary Verify the claimed name for one phone number
// @Tags Verify
// @Produce json
// @Param phone_number query string true "E.164 phone number" example(+15551234567)
// @Success 200 {object} domain.Result "verdict"
// @Router /verify [get]
func (h *handlers) one(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[domain.PhoneQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.VerifyOne(logger.WithRequest(r.Context(), "", q.PhoneNumber), q.PhoneNumber)
}

// swagger:route GET /verify/all Verify verifyAll
// @Summary Verify every directory record
// @Tags Verify
// @Produce json
// @Success 200 {array} domain.Result "verdicts in directory order"
// @Router /verify/all [get]
func (h *handlers) all(r *stdhttp.Request) (any, error) {
	return h.svc.VerifyAll(r.Context())
}
