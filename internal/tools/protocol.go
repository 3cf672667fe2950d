// internal/tools/protocol.go
// Struktur dasar protocol tool: request + envelope hasil.

package tools

import (
	"encoding/json"
	"net/http"
)

type ToolRequest struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ToolResponse adalah envelope seragam semua tool.
// Invariant: tepat satu dari Data/Error yang terisi, sesuai nilai Success.
// Selalu buat lewat OK/Fail supaya invariant itu tidak bisa dilanggar.
type ToolResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) ToolResponse {
	return ToolResponse{Success: true, Data: data}
}

func Fail(msg string) ToolResponse {
	if msg == "" {
		msg = "unknown error"
	}
	return ToolResponse{Success: false, Error: msg}
}

// FailErr shortcut untuk error Go biasa.
func FailErr(err error) ToolResponse {
	if err == nil {
		return Fail("")
	}
	return Fail(err.Error())
}

// WriteJSON menulis envelope sebagai response HTTP.
// Envelope failure tetap 200: caller memeriksa flag success, bukan status code.
func WriteJSON(w http.ResponseWriter, resp ToolResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
