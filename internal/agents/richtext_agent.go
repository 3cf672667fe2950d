// internal/agents/richtext_agent.go
// Agent rich text: menerapkan instruksi formatting ke konten teks,
// menghasilkan array segment yang siap dipakai pkg/richtext.

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/L1xux/notion-agent/internal/llm"
	"github.com/L1xux/notion-agent/pkg/richtext"
)

type RichTextAgent struct {
	client llm.Client
}

func NewRichTextAgent(client llm.Client) *RichTextAgent {
	return &RichTextAgent{client: client}
}

const richTextSystem = `You are a text formatting engine. Apply the given format instructions to the given text by splitting it into segments.

Format mapping:
- color words (red, blue, green, yellow, purple, pink, gray, orange, brown) -> "color"
- bold -> "bold": true; italic -> "italic": true; underline -> "underline": true
- strikethrough -> "strikethrough": true; code/monospace -> "code": true
- link X to URL -> "link_url"

Rules:
1. Apply every instruction; multiple formats may stack on the same segment.
2. Split the text so formatted phrases become their own segments; everything else
   stays as unformatted segments in original order.
3. Concatenating all "content" values must reproduce the input text exactly.
4. If an instruction targets a phrase not present in the text, skip that instruction.

Respond with ONLY this JSON object:
{"segments": [{"content": "...", "bold": false, "italic": false, "underline": false, "strikethrough": false, "code": false, "color": "default", "link_url": ""}]}`

// Format membuat segment terformat dari (instruksi, teks).
// Instruksi kosong tidak memanggil LLM sama sekali: satu segment plain.
func (a *RichTextAgent) Format(ctx context.Context, formatInstructions, resultText string) ([]richtext.Segment, error) {
	if strings.TrimSpace(resultText) == "" {
		return nil, fmt.Errorf("empty result text")
	}
	if strings.TrimSpace(formatInstructions) == "" {
		return []richtext.Segment{{Content: resultText}}, nil
	}

	user := fmt.Sprintf("Format instructions:\n%s\n\nText:\n%s", formatInstructions, resultText)
	raw, err := a.client.AnswerJSON(ctx, user, richTextSystem)
	if err != nil {
		return nil, fmt.Errorf("rich text agent: %w", err)
	}

	var out struct {
		Segments []richtext.Segment `json:"segments"`
	}
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &out); err != nil {
		return nil, fmt.Errorf("rich text decode: %w", err)
	}
	if len(out.Segments) == 0 {
		// model tidak menghasilkan segment; jatuhkan ke plain
		return []richtext.Segment{{Content: resultText}}, nil
	}
	return out.Segments, nil
}
