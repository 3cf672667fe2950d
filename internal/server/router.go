// internal/server/router.go
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/L1xux/notion-agent/internal/app"
	"github.com/L1xux/notion-agent/internal/tools"
)

// NewMux membangun router untuk binary tool-router: planner route + tool group.
func NewMux() *chi.Mux {
	r := chi.NewRouter()

	// Healthcheck (biar gampang cek port/path)
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/route", tools.RouterHandler)

	app.RegisterToolRouters(r)

	return r
}
