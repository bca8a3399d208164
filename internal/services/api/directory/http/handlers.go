// Package http serves the mock directory users list
package http

import (
	stdhttp "net/http"

	"callerverify/internal/modkit/httpkit"
	phttp "callerverify/internal/platform/net/http"
	"callerverify/internal/services/api/verify/domain"
)

// Register mounts the mock users endpoint
func Register(r httpkit.Router, dir domain.Directory) {
	h := &handlers{dir: dir}
	r.Get("/users", h.users)
}

type handlers struct{ dir domain.Directory }

// swagger:route GET /directory/users Directory directoryUsers
// @Summary Mock directory users list (bare array, no envelope)
// @Tags Directory
// @Produce json
// @Success 200 {array} domain.Record "users"
// @Router /directory/users [get]
func (h *handlers) users(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	recs, err := h.dir.ListRecords(r.Context())
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	phttp.JSON(w, stdhttp.StatusOK, recs)
}
