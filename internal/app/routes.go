// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/L1xux/notion-agent/internal/agents"
	hh "github.com/L1xux/notion-agent/internal/handlers/http"
	"github.com/L1xux/notion-agent/internal/tools"
)

type RegisterDeps struct {
	Composer *agents.Composer
}

// RegisterRoutes memasang route dengan dependency default (tanpa composer).
// Dipakai test & setup minimal.
func RegisterRoutes(r *mux.Router) {
	RegisterRoutesWithDeps(r, RegisterDeps{})
}

// RegisterRoutesWithDeps menambahkan route HTTP biasa (non-tools).
func RegisterRoutesWithDeps(r *mux.Router, deps RegisterDeps) {
	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)

	api.HandleFunc("/search", hh.SearchHandler).
		Methods(http.MethodPost, http.MethodOptions)

	// Katalog + invoke langsung per tool
	api.HandleFunc("/tools", hh.ToolsCatalogHandler).Methods(http.MethodGet)
	api.HandleFunc("/tools/{name}", hh.ToolInvokeHandler).
		Methods(http.MethodPost, http.MethodOptions)

	// Router berbasis LLM planner (question -> routes -> tools)
	api.HandleFunc("/route", tools.RouterHandler).
		Methods(http.MethodPost, http.MethodOptions)

	// Pipeline compose (hanya bila LLM client tersedia)
	if deps.Composer != nil {
		api.HandleFunc("/compose", hh.NewComposeHandler(hh.ComposeDeps{Composer: deps.Composer})).
			Methods(http.MethodPost, http.MethodOptions)
	}

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)
}
