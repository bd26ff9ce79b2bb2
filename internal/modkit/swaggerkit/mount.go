// Package swaggerkit serves the API spec and the swagger ui
package swaggerkit

import (
	"net/http"

	phttp "stockcount/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the ui under /api/docs when enabled, basePath is the
// server url written into the spec
func Mount(r phttp.Router, enabled bool, basePath string) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(basePath))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
