// internal/tools/planner.go
// Planner LLM: memilih route tool dari pertanyaan bebas, berbekal katalog embedded.

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/L1xux/notion-agent/internal/llm"
)

type RoutePlanner struct {
	client llm.Client
}

func NewRoutePlanner(c llm.Client) *RoutePlanner {
	return &RoutePlanner{client: c}
}

func NewRoutePlannerFromEnv() (*RoutePlanner, error) {
	c, err := llm.NewFromEnv()
	if err != nil {
		return nil, err
	}
	return &RoutePlanner{client: c}, nil
}

const plannerSystem = `You are a routing planner for a Notion tool server.
Given a user question, pick the tool routes to execute, in order.
Respond ONLY with a JSON object of this exact shape:
{
  "mode": "tool" | "hybrid",
  "routes": [
    {"kind": "tool", "tool": "<tool name>", "params": { ... }},
    {"kind": "resolve", "query": "<page title to search>"}
  ],
  "reason": "short explanation"
}
Rules:
- Use only tool names from the provided catalog.
- Use kind "resolve" (with the page title as query) when the question names a
  target page by title instead of id; routes after it may omit page_id.
- Params must follow each tool's input_schema. Omit unknown fields.`

// Plan menyusun Plan dari pertanyaan user. Hasil selalu melewati NormalizePlan
// di router, jadi di sini cukup bentuk mentahnya.
func (p *RoutePlanner) Plan(ctx context.Context, question string) (Plan, error) {
	defs, err := LoadToolDefs()
	if err != nil {
		return Plan{}, fmt.Errorf("load tool catalog: %w", err)
	}

	type toolForLLM struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		InputSchema string `json:"input_schema"`
	}
	catalog := make([]toolForLLM, 0, len(defs))
	for _, d := range defs {
		catalog = append(catalog, toolForLLM{Name: d.Name, Description: d.Description, InputSchema: d.InputSchema})
	}
	// urutkan demi deterministik
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].Name < catalog[j].Name })

	catalogJSON, _ := json.Marshal(catalog)

	user := fmt.Sprintf("TOOL CATALOG:\n%s\n\nQUESTION:\n%s\n\nGenerate the JSON plan:", catalogJSON, question)

	raw, err := p.client.AnswerJSON(ctx, user, plannerSystem)
	if err != nil {
		return Plan{}, err
	}

	var plan Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return Plan{}, fmt.Errorf("unmarshal plan: %w; raw=%s", err, truncate(raw, 300))
	}
	if len(plan.Routes) == 0 {
		return Plan{}, fmt.Errorf("planner returned empty routes")
	}
	if plan.Mode == "" {
		plan.Mode = "tool"
	}
	return plan, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
