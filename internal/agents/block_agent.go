// internal/agents/block_agent.go
// Agent block: mengubah instruksi struktur menjadi rencana block JSON,
// lalu mengeksekusinya lewat registry tool in-process. Satu step = satu tool.

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/L1xux/notion-agent/internal/llm"
	"github.com/L1xux/notion-agent/internal/tools"
	"github.com/L1xux/notion-agent/pkg/richtext"
)

type BlockAgent struct {
	client llm.Client
}

func NewBlockAgent(client llm.Client) *BlockAgent {
	return &BlockAgent{client: client}
}

// plannedBlock adalah satu entri rencana dari LLM.
type plannedBlock struct {
	Type            string `json:"type"`
	Text            string `json:"text,omitempty"`
	Level           int    `json:"level,omitempty"`
	Color           string `json:"color,omitempty"`
	Icon            string `json:"icon,omitempty"`
	Language        string `json:"language,omitempty"`
	Checked         bool   `json:"checked,omitempty"`
	Expression      string `json:"expression,omitempty"`
	URL             string `json:"url,omitempty"`
	Title           string `json:"title,omitempty"`
	Caption         string `json:"caption,omitempty"`
	TableWidth      int    `json:"table_width,omitempty"`
	TableHeight     int    `json:"table_height,omitempty"`
	HasColumnHeader bool   `json:"has_column_header,omitempty"`
	HasRowHeader    bool   `json:"has_row_header,omitempty"`
	// UseContent menandai block yang membawa konten utama terformat;
	// text-nya diganti rich text hasil agent formatting.
	UseContent bool `json:"use_content,omitempty"`
}

const blockPlanSystem = `You are a document architect. Turn the structural instructions into an ordered list of blocks.

Supported types: heading_1, heading_2, heading_3, paragraph, callout, quote, divider, toggle,
code, to_do, bulleted_list_item, numbered_list_item, table_of_contents, breadcrumb, equation,
table, image, video, embed, bookmark, link.

Per-type fields:
- headings/paragraph/callout/quote/toggle/list items/to_do: "text" (plus "level" for headings,
  "icon" for callout, "checked" for to_do)
- code: "text" and "language"
- equation: "expression"
- table: "table_width", "table_height", "has_column_header", "has_row_header"
- image/video/embed/bookmark: "url" and optional "caption"
- link: "url" and optional "title"
- divider/table_of_contents/breadcrumb: no extra fields

Rules:
1. Follow the instructions top to bottom; one entry per block.
2. Preserve exact text, code samples, and URLs from the instructions.
3. Mark exactly one body block (usually a paragraph) with "use_content": true when the
   instructions reference the main text content; its "text" may be left empty.

Respond with ONLY this JSON object:
{"blocks": [{"type": "...", ...}]}`

// Run merencanakan block dari instruksi lalu mengeksekusinya ke page target.
// Segments (bila ada) dipasang pada block yang ditandai use_content.
func (a *BlockAgent) Run(ctx context.Context, pageID, blockInstructions string, segments []richtext.Segment) ([]tools.ExecResult, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, fmt.Errorf("page_id is required")
	}
	if strings.TrimSpace(blockInstructions) == "" {
		return nil, fmt.Errorf("empty block instructions")
	}

	raw, err := a.client.AnswerJSON(ctx, "Structural instructions:\n"+blockInstructions, blockPlanSystem)
	if err != nil {
		return nil, fmt.Errorf("block plan: %w", err)
	}

	var plan struct {
		Blocks []plannedBlock `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &plan); err != nil {
		return nil, fmt.Errorf("block plan decode: %w", err)
	}
	if len(plan.Blocks) == 0 {
		return nil, fmt.Errorf("block plan is empty")
	}

	routes, err := routesFromPlan(pageID, plan.Blocks, segments)
	if err != nil {
		return nil, err
	}
	return tools.ExecuteRoutes(ctx, routes), nil
}

// routesFromPlan memetakan tiap planned block ke tool append yang sesuai.
func routesFromPlan(pageID string, planned []plannedBlock, segments []richtext.Segment) ([]tools.Route, error) {
	routes := make([]tools.Route, 0, len(planned))
	for i, b := range planned {
		tool, params, err := routeForBlock(pageID, b, segments)
		if err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
		routes = append(routes, tools.Route{
			Kind:   tools.RouteTool,
			Tool:   tool,
			Params: params,
		})
	}
	return routes, nil
}

func routeForBlock(pageID string, b plannedBlock, segments []richtext.Segment) (string, json.RawMessage, error) {
	enc := func(v any) json.RawMessage {
		raw, _ := json.Marshal(v)
		return raw
	}

	// block pembawa konten utama memakai append_blocks agar bisa
	// mengangkut rich text segments.
	if b.UseContent && len(segments) > 0 {
		typ := b.Type
		if typ == "" {
			typ = "paragraph"
		}
		return "append_blocks", enc(map[string]any{
			"page_id": pageID,
			"blocks": []map[string]any{{
				"type":      typ,
				"rich_text": segments,
				"color":     b.Color,
			}},
		}), nil
	}

	base := map[string]any{"page_id": pageID}
	withText := func(extra map[string]any) json.RawMessage {
		base["text"] = b.Text
		if b.Color != "" {
			base["color"] = b.Color
		}
		for k, v := range extra {
			base[k] = v
		}
		return enc(base)
	}

	switch b.Type {
	case "heading_1", "heading_2", "heading_3":
		level := b.Level
		if level == 0 {
			level = int(b.Type[len(b.Type)-1] - '0')
		}
		return "append_heading", withText(map[string]any{"level": level}), nil
	case "paragraph", "":
		return "append_paragraph", withText(nil), nil
	case "callout":
		return "append_callout", withText(map[string]any{"icon": b.Icon}), nil
	case "quote":
		return "append_quote", withText(nil), nil
	case "toggle":
		return "append_toggle", withText(nil), nil
	case "code":
		return "append_code", withText(map[string]any{"language": b.Language}), nil
	case "to_do":
		return "append_todo", withText(map[string]any{"checked": b.Checked}), nil
	case "bulleted_list_item":
		return "append_bulleted_list_item", withText(nil), nil
	case "numbered_list_item":
		return "append_numbered_list_item", withText(nil), nil
	case "divider":
		return "append_divider", enc(base), nil
	case "table_of_contents":
		return "append_table_of_contents", enc(base), nil
	case "breadcrumb":
		return "append_breadcrumb", enc(base), nil
	case "equation":
		base["expression"] = b.Expression
		return "append_equation", enc(base), nil
	case "table":
		base["table_width"] = b.TableWidth
		base["table_height"] = b.TableHeight
		base["has_column_header"] = b.HasColumnHeader
		base["has_row_header"] = b.HasRowHeader
		return "append_table", enc(base), nil
	case "image":
		base["image_url"] = b.URL
		base["caption"] = b.Caption
		return "append_image", enc(base), nil
	case "video":
		base["video_url"] = b.URL
		base["caption"] = b.Caption
		return "append_video", enc(base), nil
	case "embed":
		base["embed_url"] = b.URL
		base["caption"] = b.Caption
		return "append_embed", enc(base), nil
	case "bookmark":
		base["bookmark_url"] = b.URL
		base["caption"] = b.Caption
		return "append_bookmark", enc(base), nil
	case "link":
		base["url"] = b.URL
		base["title"] = b.Title
		return "append_link", enc(base), nil
	default:
		return "", nil, fmt.Errorf("unsupported block type: %s", b.Type)
	}
}
