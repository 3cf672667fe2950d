// internal/handlers/http/tools_handler.go
// Endpoint katalog tool + invoke langsung per nama (untuk debug/manual curl).

package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/L1xux/notion-agent/internal/tools"
)

// ToolsCatalogHandler mengembalikan daftar tool dari katalog embedded.
func ToolsCatalogHandler(w http.ResponseWriter, r *http.Request) {
	defs, err := tools.LoadToolDefs()
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"status": "error", "error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"count":  len(defs),
		"tools":  defs,
	})
}

// ToolInvokeHandler menjalankan satu tool berdasarkan path /api/tools/{name}.
// Body diteruskan sebagai params; hasil selalu berupa envelope tool.
func ToolInvokeHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		tools.WriteJSON(w, tools.Fail("tool name is required"))
		return
	}
	tools.Serve(w, r, name)
}
