// internal/handlers/http/compose_handler.go
// Endpoint compose: request bebas user -> pipeline agent -> block di Notion.

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/L1xux/notion-agent/internal/agents"
	"github.com/L1xux/notion-agent/internal/util"
)

type ComposeDeps struct {
	Composer *agents.Composer
}

type composeResponse struct {
	Status string                `json:"status"`
	Result *agents.ComposeResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// NewComposeHandler membuat handler POST /api/compose.
// Pipeline memanggil LLM beberapa kali, jadi timeout-nya lebih longgar
// dari tool biasa.
func NewComposeHandler(deps ComposeDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if deps.Composer == nil {
			writeComposeErr(w, util.Internal("composer not configured"))
			return
		}

		var req agents.ComposeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeComposeErr(w, util.BadInput("bad json"))
			return
		}
		if strings.TrimSpace(req.Input) == "" {
			writeComposeErr(w, util.BadInput("input is required"))
			return
		}
		if strings.TrimSpace(req.PageID) == "" && strings.TrimSpace(req.PageTitle) == "" {
			writeComposeErr(w, util.BadInput("page_id or page_title is required"))
			return
		}

		ctx := r.Context()
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, 90*time.Second)
			defer cancel()
		}

		result, err := deps.Composer.Compose(ctx, req)
		if err != nil {
			writeComposeErr(w, util.Upstream(err.Error()))
			return
		}

		json.NewEncoder(w).Encode(composeResponse{
			Status: "ok",
			Result: &result,
		})
	}
}

func writeComposeErr(w http.ResponseWriter, err error) {
	w.WriteHeader(util.HTTPStatus(err))
	json.NewEncoder(w).Encode(composeResponse{
		Status: "error",
		Error:  err.Error(),
	})
}
