package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "stockcount/internal/platform/errors"
)

type actualIn struct {
	Qty int `json:"qty" validate:"min=0"`
}

func serve(h Handler, method, body string) (int, Envelope) {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, "/sessions/s1/lines/A/actual", strings.NewReader(body)))
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec.Code, env
}

func TestJSONHandler(t *testing.T) {
	t.Parallel()

	calls := 0
	h := JSONHandler(func(_ *http.Request, in actualIn) (any, error) {
		calls++
		if in.Qty == 13 {
			return nil, perr.Gonef("session is closed")
		}
		if in.Qty == 99 {
			return nil, errors.New("disk on fire")
		}
		return map[string]int{"actual": in.Qty}, nil
	})

	tests := []struct {
		name   string
		body   string
		status int
		code   perr.ErrorCode
	}{
		{name: "ok", body: `{"qty":4}`, status: http.StatusOK},
		{name: "broken json", body: `{"qty":`, status: http.StatusBadRequest, code: perr.ErrorCodeJSON},
		{name: "negative", body: `{"qty":-1}`, status: http.StatusBadRequest, code: perr.ErrorCodeValidation},
		{name: "coded error", body: `{"qty":13}`, status: http.StatusGone, code: perr.ErrorCodeGone},
		{name: "foreign error", body: `{"qty":99}`, status: http.StatusInternalServerError, code: perr.ErrorCodeUnknown},
	}
	for _, tc := range tests {
		status, env := serve(h, http.MethodPut, tc.body)
		if status != tc.status || env.StatusCode != tc.status || env.Code != tc.code {
			t.Fatalf("%s: status %d code %q, want %d %q", tc.name, status, env.Code, tc.status, tc.code)
		}
	}
	// only bodies that bind reach the handler
	if calls != 3 {
		t.Fatalf("handler calls %d", calls)
	}
}

func TestJSONHandlerStatus_Created(t *testing.T) {
	t.Parallel()

	h := JSONHandlerStatus(http.StatusCreated, func(_ *http.Request, in actualIn) (any, error) { return in, nil })
	status, env := serve(h, http.MethodPost, `{"qty":2}`)
	if status != http.StatusCreated || env.Status != "Created" {
		t.Fatalf("status %d envelope %+v", status, env)
	}
	if m, _ := env.Data.(map[string]any); m["qty"] != float64(2) {
		t.Fatalf("data %#v", env.Data)
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	t.Parallel()

	h := JSONHandlerNoBody(func(*http.Request) (any, error) { return nil, perr.NotFoundf("session s1 not found") })
	status, env := serve(h, http.MethodGet, "")
	if status != http.StatusNotFound || env.Error != "session s1 not found" {
		t.Fatalf("status %d envelope %+v", status, env)
	}
}
