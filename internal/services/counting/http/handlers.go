// Package http provides http transport for counting sessions
package http

import (
	stdhttp "net/http"

	"stockcount/internal/modkit/httpkit"
	perr "stockcount/internal/platform/errors"
	"stockcount/internal/services/counting/domain"

	"github.com/google/uuid"
)

// Register mounts the session and paper routes
func Register(r httpkit.Router, s domain.ServicePort) {
	registerValidators()
	h := &handlers{svc: s}
	httpkit.CreateJSON[domain.OpenSessionIn](r, "/", h.open)
	httpkit.Get(r, "/papers/{id}", h.paper)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Get(r, "/{id}/paper", h.sessionPaper)
	httpkit.Delete(r, "/{id}", h.close)
	httpkit.PostJSON[domain.ScanIn](r, "/{id}/scans", h.scan)
	httpkit.PutJSON[domain.AdjustIn](r, "/{id}/lines/{item}", h.adjust)
	httpkit.CreateJSON[domain.ConfirmIn](r, "/{id}/confirm", h.confirm)
}

type handlers struct{ svc domain.ServicePort }

func idParam(r *stdhttp.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(httpkit.Param(r, "id"))
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}
	return id, nil
}

// swagger:route POST /sessions Sessions sessionOpen
// @Summary Open a counting session
// @Description Lines are fetched from the warehouse backend when omitted
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body domain.OpenSessionIn true "Session"
// @Success 201 {object} domain.SessionView "created"
// @Failure 400 {object} httpkit.Envelope "duplicate or invalid lines"
// @Failure 502 {object} httpkit.Envelope "warehouse backend failed"
// @Router /sessions [post]
func (h *handlers) open(r *stdhttp.Request, in domain.OpenSessionIn) (any, error) {
	return h.svc.Open(r.Context(), in)
}

// swagger:route GET /sessions/{id} Sessions sessionGet
// @Summary Session state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.SessionView "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// swagger:route POST /sessions/{id}/scans Sessions sessionScan
// @Summary Submit one decode event
// @Description Rejected and dropped payloads answer 200 with the outcome
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.ScanIn true "Scan"
// @Success 200 {object} domain.ScanResult "ok"
// @Failure 410 {object} httpkit.Envelope "session closed"
// @Router /sessions/{id}/scans [post]
func (h *handlers) scan(r *stdhttp.Request, in domain.ScanIn) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Scan(r.Context(), id, in)
}

// swagger:route PUT /sessions/{id}/lines/{item} Sessions sessionAdjust
// @Summary Manual quantity entry
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param item path string true "Item id"
// @Param payload body domain.AdjustIn true "Quantity"
// @Success 200 {object} domain.LineView "ok"
// @Failure 404 {object} httpkit.Envelope "unknown session or item"
// @Router /sessions/{id}/lines/{item} [put]
func (h *handlers) adjust(r *stdhttp.Request, in domain.AdjustIn) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Adjust(r.Context(), id, httpkit.Param(r, "item"), in)
}

// swagger:route POST /sessions/{id}/confirm Sessions sessionConfirm
// @Summary Confirm a count with both signatures
// @Description Tears the session down, stores the paper and pushes it to the warehouse backend
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.ConfirmIn true "Signatures"
// @Success 201 {object} domain.PaperView "created"
// @Router /sessions/{id}/confirm [post]
func (h *handlers) confirm(r *stdhttp.Request, in domain.ConfirmIn) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Confirm(r.Context(), id, in)
}

// swagger:route DELETE /sessions/{id} Sessions sessionClose
// @Summary Tear a session down without a paper
// @Tags Sessions
// @Param id path string true "Session id"
// @Success 204 "closed"
// @Router /sessions/{id} [delete]
func (h *handlers) close(r *stdhttp.Request) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Close(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route GET /sessions/papers/{id} Sessions paperGet
// @Summary Stored paper
// @Tags Sessions
// @Produce json
// @Param id path string true "Paper id"
// @Success 200 {object} domain.PaperView "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/papers/{id} [get]
func (h *handlers) paper(r *stdhttp.Request) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Paper(r.Context(), id)
}

// swagger:route GET /sessions/{id}/paper Sessions sessionPaperGet
// @Summary Paper produced by a confirmed session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.PaperView "ok"
// @Failure 404 {object} httpkit.Envelope "session not confirmed or unknown"
// @Router /sessions/{id}/paper [get]
func (h *handlers) sessionPaper(r *stdhttp.Request) (any, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SessionPaper(r.Context(), id)
}
