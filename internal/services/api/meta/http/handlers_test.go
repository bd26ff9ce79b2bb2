package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "stockcount/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type count int

func (c count) Len() int { return int(c) }

func get[T any](t *testing.T, d Deps, path string) T {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s status %d", path, rec.Code)
	}
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return env.Data
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pg   any
		ch   any
		want string
	}{
		{name: "all ok", pg: pinger{}, ch: pinger{}, want: "ok"},
		{name: "clickhouse disabled", pg: pinger{}, want: "degraded"},
		{name: "pg down", pg: pinger{err: errors.New("refused")}, ch: pinger{}, want: "fail"},
		{name: "not pingable", pg: struct{}{}, ch: pinger{}, want: "degraded"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := get[ReadyResponse](t, Deps{PG: tc.pg, CH: tc.ch}, "/ready")
			if got.Status != tc.want || len(got.Checks) != 2 {
				t.Fatalf("ready %+v", got)
			}
		})
	}
}

func TestServiceReportsUptimeAndSessions(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	d := Deps{
		ServiceName: "stockcount-api",
		StartedAt:   start,
		Sessions:    count(3),
		Now:         func() time.Time { return start.Add(5 * time.Minute) },
	}
	got := get[ServiceResponse](t, d, "/service")
	if got.Uptime != 300 || got.Live != 3 || got.Name != "stockcount-api" {
		t.Fatalf("service %+v", got)
	}

	h := get[HealthResponse](t, d, "/health")
	if !h.OK || h.Now != "2025-09-03T13:05:00Z" || h.Started != "2025-09-03T13:00:00Z" {
		t.Fatalf("health %+v", h)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()
	got := get[map[string]string](t, Deps{}, "/version")
	if got["service"] != "stockcount-api" {
		t.Fatalf("version %v", got)
	}
}
