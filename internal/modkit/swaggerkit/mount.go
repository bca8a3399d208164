// Package swaggerkit serves the OpenAPI document and swagger ui
package swaggerkit

import (
	"net/http"

	phttp "callerverify/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount registers /api/docs when enabled
func Mount(r phttp.Router, enabled bool, o DocOptions) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
		httpSwagger.DocExpansion("list"),
	))
}
