// internal/tools/plan_test.go

package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/L1xux/notion-agent/internal/tools"
)

func TestNormalizePlanUpgradesLegacySearch(t *testing.T) {
	p := tools.Plan{
		Mode: "tool",
		Routes: []tools.Route{
			{Tool: "search", Params: json.RawMessage(`{"page_title":"Roadmap"}`)},
		},
	}

	got := tools.NormalizePlan(context.Background(), "", p, 8)
	if got.Routes[0].Tool != "search_pages" {
		t.Fatalf("expected legacy search+page_title upgraded to search_pages, got %s", got.Routes[0].Tool)
	}
	if got.Routes[0].Kind != tools.RouteTool {
		t.Fatalf("expected kind default to tool, got %s", got.Routes[0].Kind)
	}
}

func TestNormalizePlanKeepsRawSearchWithoutTitle(t *testing.T) {
	p := tools.Plan{
		Routes: []tools.Route{
			{Tool: "search", Params: json.RawMessage(`{"query":"anything"}`)},
		},
	}
	got := tools.NormalizePlan(context.Background(), "", p, 8)
	if got.Routes[0].Tool != "search" {
		t.Fatalf("raw search must stay raw, got %s", got.Routes[0].Tool)
	}
}

// append_* tanpa page_id + pertanyaan menyebut judul dalam kutip
// -> route resolve disisipkan di depan dan mode jadi hybrid.
func TestNormalizePlanInsertsResolveForQuotedTitle(t *testing.T) {
	p := tools.Plan{
		Mode: "tool",
		Routes: []tools.Route{
			{Kind: tools.RouteTool, Tool: "append_paragraph", Params: json.RawMessage(`{"text":"halo"}`)},
		},
	}

	got := tools.NormalizePlan(context.Background(), `tulis halo di page "Catatan Harian"`, p, 8)
	if len(got.Routes) != 2 {
		t.Fatalf("expected resolve prepended, got %d routes", len(got.Routes))
	}
	if got.Routes[0].Kind != tools.RouteResolve || got.Routes[0].Query != "Catatan Harian" {
		t.Fatalf("unexpected resolve route: %+v", got.Routes[0])
	}
	if got.Mode != "hybrid" {
		t.Fatalf("expected mode hybrid, got %s", got.Mode)
	}
}

func TestNormalizePlanLeavesCompletePlanAlone(t *testing.T) {
	p := tools.Plan{
		Mode: "tool",
		Routes: []tools.Route{
			{Kind: tools.RouteTool, Tool: "append_paragraph", Params: json.RawMessage(`{"page_id":"p1","text":"halo"}`)},
		},
	}
	got := tools.NormalizePlan(context.Background(), `di page "X"`, p, 8)
	if len(got.Routes) != 1 {
		t.Fatalf("plan with page_id must not gain a resolve route, got %d", len(got.Routes))
	}
}

func TestNormalizePlanClampsRoutes(t *testing.T) {
	var routes []tools.Route
	for i := 0; i < 12; i++ {
		routes = append(routes, tools.Route{Kind: tools.RouteTool, Tool: "search", Params: json.RawMessage(`{"query":"q"}`)})
	}
	got := tools.NormalizePlan(context.Background(), "", tools.Plan{Routes: routes}, 5)
	if len(got.Routes) != 5 {
		t.Fatalf("expected clamp to 5 routes, got %d", len(got.Routes))
	}
}
