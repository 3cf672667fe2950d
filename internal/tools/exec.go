// internal/tools/exec.go

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ExecResult struct {
	Route Route       `json:"route"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// ExecuteRoutes menjalankan semua route secara in-process lewat registry.
// RouteResolve mengeksekusi search_pages lalu menyimpan page_id hasilnya;
// route tool berikutnya yang belum punya page_id otomatis diinjeksi id itu.
// Satu route gagal tidak menghentikan route lain (per-route envelope).
func ExecuteRoutes(ctx context.Context, routes []Route) []ExecResult {
	var out []ExecResult
	var resolvedPageID string

	for _, r := range routes {
		switch r.Kind {

		case RouteResolve:
			resp := invoke(ctx, "search_pages", mustJSON(map[string]any{"page_title": r.Query}))
			if !resp.Success {
				out = append(out, ExecResult{Route: r, Error: resp.Error})
				continue
			}
			id := firstPageID(resp.Data)
			if id == "" {
				out = append(out, ExecResult{Route: r, Error: "no page matched title: " + r.Query})
				continue
			}
			resolvedPageID = id
			out = append(out, ExecResult{Route: r, Data: map[string]any{"page_id": id}})

		case RouteTool:
			params := r.Params
			if resolvedPageID != "" && !hasPageID(params) {
				params = withPageID(params, resolvedPageID)
			}
			resp := invoke(ctx, r.Tool, params)
			if resp.Success {
				out = append(out, ExecResult{Route: r, Data: resp.Data})
			} else {
				out = append(out, ExecResult{Route: r, Error: resp.Error})
			}

		default:
			out = append(out, ExecResult{Route: r, Error: "unknown route kind"})
		}
	}

	return out
}

// Invoke menjalankan satu tool terdaftar secara in-process; dipakai
// executor dan juga pipeline agent.
func Invoke(ctx context.Context, name string, params json.RawMessage) ToolResponse {
	return invoke(ctx, name, params)
}

// invoke menjalankan satu tool terdaftar tanpa HTTP nyata dan
// men-decode envelope hasilnya.
func invoke(ctx context.Context, name string, params json.RawMessage) ToolResponse {
	body := []byte("{}")
	if len(params) > 0 && !isJSONNullOrEmpty(params) {
		body = params
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "/tools/internal/"+name, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := newMemRecorder()
	Serve(rr, req, name)

	var resp ToolResponse
	if err := json.Unmarshal(rr.buf, &resp); err != nil {
		return Fail("decode tool response: " + err.Error())
	}
	return resp
}

// firstPageID mengambil id page pertama dari data search_pages.
func firstPageID(data interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	var tmp struct {
		Pages []struct {
			ID string `json:"id"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(b, &tmp); err != nil || len(tmp.Pages) == 0 {
		return ""
	}
	return tmp.Pages[0].ID
}

func withPageID(raw json.RawMessage, pageID string) json.RawMessage {
	m := map[string]any{}
	if len(raw) > 0 && !isJSONNullOrEmpty(raw) {
		_ = json.Unmarshal(raw, &m)
	}
	m["page_id"] = pageID
	b, _ := json.Marshal(m)
	return b
}

// ---- mini response recorder (in-memory) ----

type memRecorder struct {
	buf    []byte
	status int
	header http.Header
}

func newMemRecorder() *memRecorder { return &memRecorder{header: http.Header{}, status: 200} }

func (m *memRecorder) Header() http.Header { return m.header }
func (m *memRecorder) Write(b []byte) (int, error) {
	m.buf = append(m.buf, b...)
	return len(b), nil
}
func (m *memRecorder) WriteHeader(code int) { m.status = code }

// Util: cek apakah Params = null / {} / whitespace
func isJSONNullOrEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}
