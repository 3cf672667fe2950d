// pkg/blocks/blocks_test.go

package blocks_test

import (
	"testing"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/blocks"
	"github.com/L1xux/notion-agent/pkg/richtext"
)

func rt(s string) []notionapi.RichText {
	return []notionapi.RichText{richtext.Plain(s)}
}

func TestHeadingLevelFallback(t *testing.T) {
	cases := []struct {
		level int
		want  notionapi.BlockType
	}{
		{1, notionapi.BlockTypeHeading1},
		{2, notionapi.BlockTypeHeading2},
		{3, notionapi.BlockTypeHeading3},
		{0, notionapi.BlockTypeHeading1},
		{7, notionapi.BlockTypeHeading1},
	}
	for _, c := range cases {
		b := blocks.Heading(rt("judul"), c.level, "", false)
		if b.GetType() != c.want {
			t.Fatalf("level %d: expected %s got %s", c.level, c.want, b.GetType())
		}
	}
}

func TestCalloutDefaultIcon(t *testing.T) {
	b := blocks.Callout(rt("catatan"), "", "")
	cb, ok := b.(*notionapi.CalloutBlock)
	if !ok {
		t.Fatalf("expected CalloutBlock, got %T", b)
	}
	if cb.Callout.Icon == nil || cb.Callout.Icon.Emoji == nil || string(*cb.Callout.Icon.Emoji) != "💡" {
		t.Fatalf("expected default 💡 icon, got %+v", cb.Callout.Icon)
	}
	if cb.Callout.Color != blocks.DefaultColor {
		t.Fatalf("expected default color, got %q", cb.Callout.Color)
	}
}

// Tipe block harus sesuai nama wire API Notion, bukan variasi eja lain.
func TestBlockWireTypeNames(t *testing.T) {
	cases := []struct {
		block notionapi.Block
		want  notionapi.BlockType
	}{
		{blocks.Callout(rt("x"), "", ""), "callout"},
		{blocks.Quote(rt("x"), ""), "quote"},
		{blocks.Breadcrumb(), "breadcrumb"},
		{blocks.Toggle(rt("x"), ""), "toggle"},
		{blocks.Divider(), "divider"},
		{blocks.TableOfContents(), "table_of_contents"},
	}
	for _, c := range cases {
		if got := c.block.GetType(); got != c.want {
			t.Fatalf("expected type %q, got %q", c.want, got)
		}
	}
}

func TestCodeDefaultLanguage(t *testing.T) {
	b := blocks.Code(rt("print('x')"), "")
	cb := b.(*notionapi.CodeBlock)
	if cb.Code.Language != "python" {
		t.Fatalf("expected python default, got %q", cb.Code.Language)
	}
}

func TestTablePlaceholderCells(t *testing.T) {
	b := blocks.Table(3, 3, true, true)
	tb := b.(*notionapi.TableBlock)

	if tb.Table.TableWidth != 3 || !tb.Table.HasColumnHeader || !tb.Table.HasRowHeader {
		t.Fatalf("table config mismatch: %+v", tb.Table)
	}
	if len(tb.Table.Children) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tb.Table.Children))
	}

	first := tb.Table.Children[0].(*notionapi.TableRowBlock)
	// header kolom menang di row pertama, termasuk cell (0,0)
	if got := first.TableRow.Cells[0][0].PlainText; got != "Header 1" {
		t.Fatalf("cell (0,0): expected Header 1, got %q", got)
	}
	if got := first.TableRow.Cells[2][0].PlainText; got != "Header 3" {
		t.Fatalf("cell (0,2): expected Header 3, got %q", got)
	}

	second := tb.Table.Children[1].(*notionapi.TableRowBlock)
	if got := second.TableRow.Cells[0][0].PlainText; got != "Row 2" {
		t.Fatalf("cell (1,0): expected Row 2, got %q", got)
	}
	if got := second.TableRow.Cells[1][0].PlainText; got != "" {
		t.Fatalf("data cell should be empty, got %q", got)
	}
}

func TestTableClampsDimensions(t *testing.T) {
	b := blocks.Table(0, -2, false, false)
	tb := b.(*notionapi.TableBlock)
	if tb.Table.TableWidth != 1 || len(tb.Table.Children) != 1 {
		t.Fatalf("expected 1x1 fallback, got width=%d rows=%d", tb.Table.TableWidth, len(tb.Table.Children))
	}
}

func TestLinkFallsBackToURLAsTitle(t *testing.T) {
	b := blocks.Link("https://go.dev", "")
	pb := b.(*notionapi.ParagraphBlock)
	item := pb.Paragraph.RichText[0]
	if item.Text.Content != "https://go.dev" {
		t.Fatalf("expected URL as text, got %q", item.Text.Content)
	}
	if item.Text.Link == nil || item.Text.Link.Url != "https://go.dev" {
		t.Fatalf("link missing: %+v", item.Text)
	}
}

func TestMediaBlocksUseExternalFile(t *testing.T) {
	img := blocks.Image("https://example.com/a.png", "sampul").(*notionapi.ImageBlock)
	if img.Image.Type != notionapi.FileTypeExternal || img.Image.External.URL != "https://example.com/a.png" {
		t.Fatalf("image external mismatch: %+v", img.Image)
	}
	if len(img.Image.Caption) != 1 || img.Image.Caption[0].PlainText != "sampul" {
		t.Fatalf("caption mismatch: %+v", img.Image.Caption)
	}

	vid := blocks.Video("https://youtu.be/x", "").(*notionapi.VideoBlock)
	if len(vid.Video.Caption) != 0 {
		t.Fatalf("empty caption should stay empty, got %+v", vid.Video.Caption)
	}
}

func TestEquationDefaultExpression(t *testing.T) {
	b := blocks.Equation("").(*notionapi.EquationBlock)
	if b.Equation.Expression != "E = mc^2" {
		t.Fatalf("expected default expression, got %q", b.Equation.Expression)
	}
}
