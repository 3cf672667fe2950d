// internal/agents/compose.go
// Pipeline compose: preprocess -> rich text -> block agent.
// Target page bisa berupa page_id langsung atau judul yang diresolusi dulu.

package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/L1xux/notion-agent/internal/llm"
	"github.com/L1xux/notion-agent/internal/tools"
	"github.com/L1xux/notion-agent/pkg/richtext"
)

type Composer struct {
	pre  *Preprocessor
	rt   *RichTextAgent
	blk  *BlockAgent
	name string
}

func NewComposer(client llm.Client) *Composer {
	return &Composer{
		pre:  NewPreprocessor(client),
		rt:   NewRichTextAgent(client),
		blk:  NewBlockAgent(client),
		name: client.Model(),
	}
}

// ComposeRequest: minimal salah satu dari PageID / PageTitle harus diisi.
type ComposeRequest struct {
	PageID    string `json:"page_id,omitempty"`
	PageTitle string `json:"page_title,omitempty"`
	Input     string `json:"input"`
}

type ComposeResult struct {
	PageID       string             `json:"page_id"`
	ResolvedFrom string             `json:"resolved_from,omitempty"`
	Preprocess   PreprocessResult   `json:"preprocess"`
	Segments     []richtext.Segment `json:"segments"`
	Steps        []tools.ExecResult `json:"steps"`
	Model        string             `json:"model"`
}

// Compose menjalankan pipeline penuh terhadap satu request user.
func (c *Composer) Compose(ctx context.Context, req ComposeRequest) (ComposeResult, error) {
	if strings.TrimSpace(req.Input) == "" {
		return ComposeResult{}, fmt.Errorf("input is required")
	}

	pageID := strings.TrimSpace(req.PageID)
	resolvedFrom := ""
	if pageID == "" {
		if strings.TrimSpace(req.PageTitle) == "" {
			return ComposeResult{}, fmt.Errorf("page_id or page_title is required")
		}
		page, err := ResolvePage(ctx, req.PageTitle)
		if err != nil {
			return ComposeResult{}, err
		}
		pageID = page.ID
		resolvedFrom = page.Title
	}

	pre, err := c.pre.Preprocess(ctx, req.Input)
	if err != nil {
		return ComposeResult{}, err
	}

	var segments []richtext.Segment
	if pre.ResultText != "" {
		segments, err = c.rt.Format(ctx, pre.FormatInstructions, pre.ResultText)
		if err != nil {
			return ComposeResult{}, err
		}
	}

	instructions := pre.BlockInstructions
	if strings.TrimSpace(instructions) == "" {
		// request tanpa struktur eksplisit: satu paragraf konten
		instructions = "Paragraph: the main text content (use_content)."
	}

	steps, err := c.blk.Run(ctx, pageID, instructions, segments)
	if err != nil {
		return ComposeResult{}, err
	}

	return ComposeResult{
		PageID:       pageID,
		ResolvedFrom: resolvedFrom,
		Preprocess:   pre,
		Segments:     segments,
		Steps:        steps,
		Model:        c.name,
	}, nil
}
