// internal/app/routes_tools.go
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	hh "github.com/L1xux/notion-agent/internal/handlers/http"
	"github.com/L1xux/notion-agent/internal/tools"
)

// RegisterToolRouters memasang grup /tools di router chi; dipakai
// binary tool-router yang berdiri sendiri.
func RegisterToolRouters(r chi.Router) {
	r.Route("/tools", func(cr chi.Router) {
		cr.Get("/", hh.ToolsCatalogHandler)
		cr.Post("/{name}", func(w http.ResponseWriter, req *http.Request) {
			tools.Serve(w, req, chi.URLParam(req, "name"))
		})
	})
}
