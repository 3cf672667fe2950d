// internal/tools/router.go
// Router tool: menerima request lalu memilih & mengeksekusi tool.

package tools

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// ====== Structured log payload ======

type routeLog struct {
	At           string `json:"@t,omitempty"`    // RFC3339 timestamp
	Level        string `json:"level,omitempty"` // info|warn|error
	Event        string `json:"event,omitempty"` // tools.route
	RequestID    string `json:"request_id,omitempty"`
	Question     string `json:"question,omitempty"`
	RequestTool  string `json:"request_tool,omitempty"`
	DecisionBy   string `json:"decision_by,omitempty"` // explicit|explicit-plan|llm
	RouteCount   int    `json:"route_count,omitempty"`
	CatalogCount int    `json:"catalog_count,omitempty"`
	DurationMS   int64  `json:"duration_ms,omitempty"`
	Error        string `json:"error,omitempty"`
}

func logJSON(l routeLog) {
	l.At = time.Now().Format(time.RFC3339Nano)
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Event == "" {
		l.Event = "tools.route"
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}

var maxRoutes = func() int {
	if v := os.Getenv("PLAN_MAX_ROUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 8
}()

// planner diinjeksi dari app; nil berarti routing LLM nonaktif.
var planner Planner

func SetPlanner(p Planner) { planner = p }

type routerRequest struct {
	Tool     string          `json:"tool,omitempty"`
	Params   json.RawMessage `json:"params,omitempty"`
	Question string          `json:"question,omitempty"`
	Plan     *Plan           `json:"plan,omitempty"`
	Routes   []Route         `json:"routes,omitempty"`
}

// RouterHandler menerima POST {tool}|{plan}|{question} dan membalas envelope.
// Semua jalur kegagalan tetap keluar sebagai ToolResponse failure.
func RouterHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := r.Header.Get("X-Request-ID")

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSON(w, Fail("read body: "+err.Error()))
		logJSON(routeLog{Level: "error", RequestID: reqID, Error: "read body: " + err.Error()})
		return
	}
	defer r.Body.Close()

	var req routerRequest
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			WriteJSON(w, Fail("invalid json: "+err.Error()))
			logJSON(routeLog{Level: "error", RequestID: reqID, Error: "unmarshal: " + err.Error()})
			return
		}
	}

	// ===== 1) Plan eksplisit (plan.routes atau routes di root) =====
	var routes []Route
	if req.Plan != nil && len(req.Plan.Routes) > 0 {
		routes = req.Plan.Routes
	} else if len(req.Routes) > 0 {
		routes = req.Routes
	}
	if len(routes) > 0 {
		p := Plan{Mode: "tool", Routes: routes}
		if req.Plan != nil {
			p = *req.Plan
			p.Routes = routes
		}
		p = NormalizePlan(r.Context(), req.Question, p, maxRoutes)
		results := ExecuteRoutes(r.Context(), p.Routes)
		WriteJSON(w, OK(map[string]any{"plan": p, "results": results}))
		logJSON(routeLog{RequestID: reqID, DecisionBy: "explicit-plan", RouteCount: len(p.Routes), DurationMS: time.Since(start).Milliseconds()})
		return
	}

	// ===== 2) Tool eksplisit =====
	if name := strings.TrimSpace(req.Tool); name != "" {
		resp := invoke(r.Context(), name, req.Params)
		WriteJSON(w, resp)
		lvl := "info"
		if !resp.Success {
			lvl = "warn"
		}
		logJSON(routeLog{Level: lvl, RequestID: reqID, RequestTool: name, DecisionBy: "explicit", DurationMS: time.Since(start).Milliseconds(), Error: resp.Error})
		return
	}

	// ===== 3) Pertanyaan bebas -> planner LLM =====
	question := strings.TrimSpace(req.Question)
	if question == "" {
		WriteJSON(w, Fail("either tool, plan, or question is required"))
		return
	}
	if planner == nil {
		WriteJSON(w, Fail("llm planner not configured"))
		logJSON(routeLog{Level: "warn", RequestID: reqID, Question: question, Error: "planner not configured"})
		return
	}

	defs, _ := LoadToolDefs()

	plan, err := planner.Plan(r.Context(), question)
	if err != nil {
		WriteJSON(w, Fail("plan: "+err.Error()))
		logJSON(routeLog{Level: "error", RequestID: reqID, Question: question, CatalogCount: len(defs), Error: err.Error()})
		return
	}

	plan = NormalizePlan(r.Context(), question, plan, maxRoutes)
	results := ExecuteRoutes(r.Context(), plan.Routes)
	WriteJSON(w, OK(map[string]any{"plan": plan, "results": results}))
	logJSON(routeLog{RequestID: reqID, Question: question, DecisionBy: "llm", RouteCount: len(plan.Routes), CatalogCount: len(defs), DurationMS: time.Since(start).Milliseconds()})
}
