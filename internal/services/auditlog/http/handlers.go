// Package http provides http transport for the scan audit log
package http

import (
	stdhttp "net/http"
	"strconv"

	"stockcount/internal/modkit/httpkit"
	perr "stockcount/internal/platform/errors"
	"stockcount/internal/services/auditlog/domain"
)

// Register mounts the audit routes, a nil reader answers 503
func Register(r httpkit.Router, rd domain.ReaderPort) {
	h := &handlers{rd: rd}
	httpkit.Get(r, "/sessions/{id}", h.session)
}

type handlers struct{ rd domain.ReaderPort }

// swagger:route GET /audit/sessions/{id} Audit auditSession
// @Summary Scan audit trail of a session
// @Tags Audit
// @Produce json
// @Param id path string true "Session id"
// @Param limit query int false "Max events (1..1000)"
// @Success 200 {array} domain.Event "ok"
// @Failure 503 {object} httpkit.Envelope "audit log disabled"
// @Router /audit/sessions/{id} [get]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	if h.rd == nil {
		return nil, perr.Unavailablef("audit log is disabled")
	}
	q := domain.SessionQuery{SessionID: httpkit.Param(r, "id")}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, perr.WithField(perr.InvalidArgf("limit must be a positive integer"), "limit")
		}
		q.Limit = n
	}
	return h.rd.SessionEvents(r.Context(), q)
}
