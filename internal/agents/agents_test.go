// internal/agents/agents_test.go

package agents_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/L1xux/notion-agent/internal/agents"
	"github.com/L1xux/notion-agent/internal/tools"
	"github.com/L1xux/notion-agent/pkg/richtext"
)

// fakeLLM menjawab berdasarkan isi system prompt, supaya satu fake bisa
// melayani seluruh pipeline (preprocess -> rich text -> block plan).
type fakeLLM struct {
	t          *testing.T
	answerText string
	jsonByHint map[string]string // substring system prompt -> JSON jawaban
	jsonCalls  int
}

func (f *fakeLLM) Model() string { return "fake-model" }

func (f *fakeLLM) Answer(ctx context.Context, system, prompt string) (string, error) {
	return f.answerText, nil
}

func (f *fakeLLM) AnswerJSON(ctx context.Context, user, system string) (string, error) {
	f.jsonCalls++
	for hint, out := range f.jsonByHint {
		if strings.Contains(system, hint) {
			return out, nil
		}
	}
	f.t.Fatalf("no fake answer for system prompt: %.80s", system)
	return "", nil
}

func registerCapture(name string, sink *[]map[string]any) {
	tools.RegisterFunc(name, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var m map[string]any
		_ = json.Unmarshal(raw, &m)
		*sink = append(*sink, m)
		tools.WriteJSON(w, tools.OK(map[string]any{"tool": name}))
	})
}

// Instruksi format kosong tidak boleh memanggil LLM sama sekali.
func TestRichTextAgentPlainShortCircuit(t *testing.T) {
	fake := &fakeLLM{t: t, jsonByHint: map[string]string{}}
	agent := agents.NewRichTextAgent(fake)

	segs, err := agent.Format(context.Background(), "   ", "teks polos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.jsonCalls != 0 {
		t.Fatalf("LLM must not be called for empty instructions")
	}
	if len(segs) != 1 || segs[0].Content != "teks polos" || segs[0].Bold {
		t.Fatalf("expected single plain segment, got %+v", segs)
	}
}

func TestRichTextAgentParsesSegments(t *testing.T) {
	fake := &fakeLLM{t: t, jsonByHint: map[string]string{
		"formatting engine": `{"segments":[
			{"content":"Go ","bold":true,"color":"red"},
			{"content":"itu menyenangkan"}
		]}`,
	}}
	agent := agents.NewRichTextAgent(fake)

	segs, err := agent.Format(context.Background(), "kata Go dibold dan merah", "Go itu menyenangkan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if !segs[0].Bold || segs[0].Color != "red" {
		t.Fatalf("expected first segment bold+red, got %+v", segs[0])
	}
}

func TestPreprocessorSplitsInstructions(t *testing.T) {
	fake := &fakeLLM{
		t:          t,
		answerText: "Konten utama dokumen.",
		jsonByHint: map[string]string{
			"separate it into two": `{"block_instructions":"Heading 1: Judul. Paragraph: isi.","format_instructions":"kata Judul dibold"}`,
		},
	}
	pre := agents.NewPreprocessor(fake)

	out, err := pre.Preprocess(context.Background(), "buat judul lalu isi, Judul dibold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.BlockInstructions, "Heading 1") {
		t.Fatalf("block instructions missing: %+v", out)
	}
	if out.FormatInstructions == "" || out.ResultText != "Konten utama dokumen." {
		t.Fatalf("unexpected preprocess result: %+v", out)
	}
}

// Block agent: rencana LLM dieksekusi per route; block use_content membawa
// rich text segments lewat append_blocks.
func TestBlockAgentExecutesPlan(t *testing.T) {
	fake := &fakeLLM{t: t, jsonByHint: map[string]string{
		"document architect": `{"blocks":[
			{"type":"heading_1","text":"Judul"},
			{"type":"paragraph","use_content":true},
			{"type":"divider"}
		]}`,
	}}
	agent := agents.NewBlockAgent(fake)

	var headings, bulks, dividers []map[string]any
	registerCapture("append_heading", &headings)
	registerCapture("append_blocks", &bulks)
	registerCapture("append_divider", &dividers)

	segs := []richtext.Segment{
		{Content: "isi ", Options: richtext.Options{Bold: true}},
		{Content: "dokumen"},
	}
	results, err := agent.Run(context.Background(), "page-77", "Heading lalu isi lalu divider", segs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 step results, got %d", len(results))
	}
	for i, res := range results {
		if res.Error != "" {
			t.Fatalf("step %d failed: %s", i, res.Error)
		}
	}

	if len(headings) != 1 || headings[0]["page_id"] != "page-77" || headings[0]["text"] != "Judul" {
		t.Fatalf("unexpected heading params: %+v", headings)
	}
	if len(bulks) != 1 {
		t.Fatalf("expected one append_blocks call, got %d", len(bulks))
	}
	blocksArg, _ := bulks[0]["blocks"].([]any)
	if len(blocksArg) != 1 {
		t.Fatalf("expected one rich-text block, got %+v", bulks[0])
	}
	entry, _ := blocksArg[0].(map[string]any)
	if entry["type"] != "paragraph" {
		t.Fatalf("expected paragraph content block, got %+v", entry)
	}
	if rt, _ := entry["rich_text"].([]any); len(rt) != 2 {
		t.Fatalf("expected 2 rich text segments forwarded, got %+v", entry["rich_text"])
	}
	if len(dividers) != 1 {
		t.Fatalf("expected divider appended once, got %d", len(dividers))
	}
}

func TestComposeRequiresTarget(t *testing.T) {
	fake := &fakeLLM{t: t, jsonByHint: map[string]string{}}
	composer := agents.NewComposer(fake)

	_, err := composer.Compose(context.Background(), agents.ComposeRequest{Input: "tulis sesuatu"})
	if err == nil {
		t.Fatalf("expected error without page_id/page_title")
	}
}
