package http

import (
	stdhttp "net/http"

	"stockcount/internal/modkit/httpkit"
	perr "stockcount/internal/platform/errors"
	"stockcount/internal/services/counting/domain"
)

// RegisterOrders mounts the order lists, c may be nil when no warehouse
// backend is configured
func RegisterOrders(r httpkit.Router, c domain.OrderCatalog) {
	h := &orderHandlers{catalog: c}
	httpkit.Get(r, "/export", h.exports)
}

type orderHandlers struct{ catalog domain.OrderCatalog }

// swagger:route GET /orders/export Orders ordersExport
// @Summary List export requests
// @Description active holds requests still to count, history the completed and cancelled ones
// @Tags Orders
// @Produce json
// @Param status query string false "active or history, empty for all" Enums(active, history)
// @Param q query string false "export request id contains"
// @Success 200 {array} domain.ExportRequestView "ok"
// @Failure 422 {object} httpkit.Envelope "bad status"
// @Failure 502 {object} httpkit.Envelope "warehouse backend failed"
// @Failure 503 {object} httpkit.Envelope "no warehouse backend"
// @Router /orders/export [get]
func (h *orderHandlers) exports(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.ExportRequestsIn{Phase: domain.Phase(q.Get("status")), Query: q.Get("q")}
	switch in.Phase {
	case "", domain.PhaseActive, domain.PhaseHistory:
	default:
		return nil, perr.WithField(perr.InvalidArgf("status must be active or history"), "status")
	}
	if h.catalog == nil {
		return nil, perr.Unavailablef("no warehouse backend configured")
	}
	return h.catalog.ExportRequests(r.Context(), in)
}
