// internal/handlers/http/health_handler.go
// Handler sederhana untuk health & readiness check

package http

import (
	"encoding/json"
	"net/http"

	"github.com/L1xux/notion-agent/internal/util"
)

var clock util.Clock = util.RealClock{}

// readyCheck diisi saat wiring app; nil berarti selalu ready.
var readyCheck func() error

func SetReadyCheck(fn func() error) { readyCheck = fn }

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status": "ok",
		"time":   clock.Now().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if readyCheck != nil {
		if err := readyCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"status": "not_ready",
				"error":  err.Error(),
			})
			return
		}
	}
	json.NewEncoder(w).Encode(map[string]any{"status": "ready"})
}
