package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stockcount/internal/platform/logger"
	"stockcount/internal/platform/testkit"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestAccessLog_PassThroughAndRequestContext(t *testing.T) {
	var seen string
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		l := logger.C(r.Context()).Output(&buf)
		l.Info().Msg("inside")
		seen = buf.String()
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	}), RequestID(), AccessLogZerolog(AccessLogOptions{Slow: time.Nanosecond}))

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Request-Id", "scan-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot || rec.Body.String() != "short and stout" {
		t.Fatalf("response altered: %d %q", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, seen, "scan-42")
}

func TestCaptureWriter_CountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK}
	cw.WriteHeader(http.StatusAccepted)
	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("de"))
	if cw.status != http.StatusAccepted || cw.bytes != 5 {
		t.Fatalf("status=%d bytes=%d", cw.status, cw.bytes)
	}
}

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("scanner driver crashed") }),
		RequestID(), RecoverJSON)
	rec := httptest.NewRecorder()
	testkit.MustNotPanic(t, func() { h.ServeHTTP(rec, httptest.NewRequest("POST", "/scan", nil)) })
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `"status_code":500`)
	testkit.MustContain(t, rec.Body.String(), `"code":"panic"`)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id not mirrored")
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"https://dock.example"}})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "https://dock.example")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dock.example" {
		t.Fatalf("allow origin %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PUT") {
		t.Fatalf("allow methods %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/ping")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat status %d", rec.Code)
	}
}
