// internal/agents/preprocess.go
// Agent preprocessing: memecah request bebas user menjadi
// instruksi struktur block, instruksi formatting teks, dan konten teksnya.

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/L1xux/notion-agent/internal/llm"
)

// PreprocessResult adalah hasil pemisahan satu request user.
type PreprocessResult struct {
	BlockInstructions  string `json:"block_instructions"`
	FormatInstructions string `json:"format_instructions"`
	ResultText         string `json:"result_text"`
}

// Preprocessor memisahkan instruksi struktur vs styling lewat satu call
// JSON mode, lalu mengekstrak konten teks lewat call naratif terpisah.
type Preprocessor struct {
	client llm.Client
}

func NewPreprocessor(client llm.Client) *Preprocessor {
	return &Preprocessor{client: client}
}

const preprocessSystem = `Analyze the user input and separate it into two DISTINCT kinds of instructions while preserving all original content.

1) block_instructions: ONLY document structure and block creation, no styling.
   Include: headings (with level), paragraphs, lists (bulleted/numbered), todos, quotes,
   callouts, code blocks (with language), equations, images/videos/embeds/bookmarks (with the
   actual URL), dividers, table of contents, breadcrumbs, tables (with dimensions), and the
   top-to-bottom ordering of sections. Preserve exact text, code samples, and URLs.
   Exclude: any visual styling (colors, bold, italic, underline, strikethrough).

2) format_instructions: ONLY text styling.
   Include: bold/italic/underline/strikethrough/code, colors with the EXACT target phrases,
   and link connections (link text + target URL). Combined formats are allowed.
   Exclude: structure, block types, and content placement.

Structure goes to block_instructions; how text looks goes to format_instructions. Never mix.

Respond with ONLY this JSON object:
{"block_instructions": "...", "format_instructions": "..."}`

const extractSystem = `Extract or generate the actual text content that should appear in the final document based on the user input.

- Ignore structural instructions (create heading, add paragraph, table dimensions).
- Ignore formatting instructions (make bold, color red).
- For questions or content requests, generate a complete, informative answer.
- Expand vague placeholder phrases (key concepts, main features, important points) into
  specific content relevant to the topic.

Return only the text content.`

// Preprocess menjalankan kedua tahap. ResultText kosong tidak dianggap error:
// request yang murni struktural memang tidak punya konten teks.
func (p *Preprocessor) Preprocess(ctx context.Context, input string) (PreprocessResult, error) {
	if strings.TrimSpace(input) == "" {
		return PreprocessResult{}, fmt.Errorf("empty input")
	}

	raw, err := p.client.AnswerJSON(ctx, "User input:\n"+input, preprocessSystem)
	if err != nil {
		return PreprocessResult{}, fmt.Errorf("preprocess: %w", err)
	}

	var out PreprocessResult
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &out); err != nil {
		return PreprocessResult{}, fmt.Errorf("preprocess decode: %w", err)
	}

	text, err := p.client.Answer(ctx, extractSystem, "User input:\n"+input)
	if err != nil {
		return PreprocessResult{}, fmt.Errorf("extract text: %w", err)
	}
	out.ResultText = strings.TrimSpace(text)

	return out, nil
}
