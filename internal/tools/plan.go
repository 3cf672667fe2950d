// internal/tools/plan.go

package tools

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

type RouteKind string

const (
	// RouteTool: eksekusi satu tool terdaftar dengan params JSON mentah.
	RouteTool RouteKind = "tool"
	// RouteResolve: resolve judul page -> page_id via search_pages
	// sebelum route berikutnya jalan.
	RouteResolve RouteKind = "resolve"
)

type Route struct {
	Kind   RouteKind       `json:"kind"`
	Tool   string          `json:"tool,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Query  string          `json:"query,omitempty"` // utk RouteResolve: judul page yang dicari
}

type Plan struct {
	Mode     string  `json:"mode"` // "tool" | "compose" | "hybrid"
	Routes   []Route `json:"routes"`
	Reason   string  `json:"reason,omitempty"`
	Fallback bool    `json:"fallback,omitempty"`
}

type Planner interface {
	Plan(ctx context.Context, question string) (Plan, error)
}

// reQuotedTitle menangkap judul page yang disebut dalam tanda kutip
// ('제목' / "My Page" / `notes`).
var reQuotedTitle = regexp.MustCompile("[\"'`]([^\"'`]{1,80})[\"'`]")

// NormalizePlan membereskan plan hasil LLM/caller:
// a) nama tool lama "search" dengan page_title -> search_pages;
// b) route append_* tanpa page_id -> sisipkan RouteResolve di depan bila
//    pertanyaan menyebut judul page;
// c) pangkas jumlah route ke max.
func NormalizePlan(ctx context.Context, question string, p Plan, max int) Plan {
	for i := range p.Routes {
		r := &p.Routes[i]

		if r.Kind == "" {
			r.Kind = RouteTool
		}

		// (a) alias lama
		if r.Kind == RouteTool && strings.EqualFold(strings.TrimSpace(r.Tool), "search") {
			var tmp struct {
				PageTitle string `json:"page_title"`
			}
			_ = json.Unmarshal(r.Params, &tmp)
			if strings.TrimSpace(tmp.PageTitle) != "" {
				r.Tool = "search_pages"
			}
		}
	}

	// (b) append tanpa target page
	needsResolve := false
	for _, r := range p.Routes {
		if r.Kind != RouteTool || !strings.HasPrefix(r.Tool, "append_") {
			continue
		}
		if !hasPageID(r.Params) {
			needsResolve = true
			break
		}
	}
	if needsResolve && !hasResolve(p.Routes) {
		title := quotedTitle(question)
		if title != "" {
			p.Routes = append([]Route{{Kind: RouteResolve, Query: title}}, p.Routes...)
			if !strings.EqualFold(p.Mode, "hybrid") {
				p.Mode = "hybrid"
			}
			if p.Reason == "" {
				p.Reason = "resolve page target via search_pages before appending blocks"
			}
		}
	}

	// (c) clamp
	if max > 0 && len(p.Routes) > max {
		p.Routes = p.Routes[:max]
	}
	return p
}

func hasPageID(raw json.RawMessage) bool {
	var tmp struct {
		PageID string `json:"page_id"`
	}
	_ = json.Unmarshal(raw, &tmp)
	return strings.TrimSpace(tmp.PageID) != ""
}

func hasResolve(routes []Route) bool {
	for _, r := range routes {
		if r.Kind == RouteResolve {
			return true
		}
	}
	return false
}

func quotedTitle(question string) string {
	m := reQuotedTitle.FindStringSubmatch(question)
	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
