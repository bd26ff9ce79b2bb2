// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"stockcount/internal/core/version"
	"stockcount/internal/modkit/httpkit"
)

// Pinger is implemented by the pg and ch adapters
type Pinger interface {
	Ping(stdctx.Context) error
}

// Counter reports how many scan sessions are live
type Counter interface {
	Len() int
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Sessions    Counter

	// Now defaults to time.Now
	Now func() time.Time
}

type handlers struct{ deps Deps }

// Register mounts health, ready, version and service under r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}
	for path, fn := range map[string]func(*http.Request) (any, error){
		"/health":  h.health,
		"/ready":   h.ready,
		"/version": h.version,
		"/service": h.service,
	} {
		httpkit.Get(r, path, fn)
	}
}

// HealthResponse is always ok while the process serves requests
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"stockcount-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok" enums:"ok,fail,skipped,unknown"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok" enums:"ok,degraded,fail"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse carries uptime in seconds and the live session count
type ServiceResponse struct {
	Name    string `json:"name"    example:"stockcount-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
	Live    int    `json:"live_sessions" example:"4"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	resp := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{probe(ctx, "pg", h.deps.PG), probe(ctx, "ch", h.deps.CH)},
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}
	for _, c := range resp.Checks {
		switch {
		case c.Status == "fail":
			resp.Status = "fail"
		case c.Status != "ok" && resp.Status == "ok":
			resp.Status = "degraded"
		}
	}
	return resp, nil
}

const readyTimeout = 2 * time.Second

// probe pings dep when it can, a nil dep is an adapter that was not configured
func probe(ctx stdctx.Context, name string, dep any) ReadyCheck {
	p, ok := dep.(Pinger)
	switch {
	case dep == nil:
		return ReadyCheck{Name: name, Status: "skipped"}
	case !ok:
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and live session count
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.deps.Now().Sub(h.deps.StartedAt).Seconds()),
	}
	if h.deps.Sessions != nil {
		out.Live = h.deps.Sessions.Len()
	}
	return out, nil
}
