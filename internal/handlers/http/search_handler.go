// internal/handlers/http/search_handler.go
// Endpoint search untuk FE: meneruskan ke tool search / search_pages
// in-process dan mengembalikan envelope-nya apa adanya.

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/L1xux/notion-agent/internal/tools"
)

type searchRequest struct {
	Query     string `json:"query,omitempty"`
	PageTitle string `json:"page_title,omitempty"`
	Object    string `json:"object,omitempty"`
}

// SearchHandler: bila page_title diisi, pakai search_pages (paling-baru);
// selain itu search mentah.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		tools.WriteJSON(w, tools.Fail("bad json"))
		return
	}

	name := "search"
	if strings.TrimSpace(req.PageTitle) != "" {
		name = "search_pages"
	}

	params, _ := json.Marshal(req)
	tools.WriteJSON(w, tools.Invoke(r.Context(), name, params))
}
