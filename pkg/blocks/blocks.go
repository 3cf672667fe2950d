// pkg/blocks/blocks.go
// Builder block Notion: mengubah parameter skalar menjadi struktur block bersarang
// sesuai skema API. Murni data-shaping, network call terjadi di layer handler.

package blocks

import (
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/richtext"
)

const DefaultColor = "default"

func basic(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   t,
	}
}

// Heading membuat heading_1..heading_3. Level di luar 1..3 jatuh ke heading_1.
func Heading(rt []notionapi.RichText, level int, color string, toggleable bool) notionapi.Block {
	if color == "" {
		color = DefaultColor
	}
	h := notionapi.Heading{
		RichText:     rt,
		Color:        color,
		IsToggleable: toggleable,
	}
	switch level {
	case 2:
		return &notionapi.Heading2Block{BasicBlock: basic(notionapi.BlockTypeHeading2), Heading2: h}
	case 3:
		return &notionapi.Heading3Block{BasicBlock: basic(notionapi.BlockTypeHeading3), Heading3: h}
	default:
		return &notionapi.Heading1Block{BasicBlock: basic(notionapi.BlockTypeHeading1), Heading1: h}
	}
}

func Paragraph(rt []notionapi.RichText, color string) notionapi.Block {
	if color == "" {
		color = DefaultColor
	}
	return &notionapi.ParagraphBlock{
		BasicBlock: basic(notionapi.BlockTypeParagraph),
		Paragraph: notionapi.Paragraph{
			RichText: rt,
			Color:    color,
		},
	}
}

// Callout tanpa icon pakai default 💡.
func Callout(rt []notionapi.RichText, icon string, color string) notionapi.Block {
	if icon == "" {
		icon = "💡"
	}
	if color == "" {
		color = DefaultColor
	}
	emoji := notionapi.Emoji(icon)
	return &notionapi.CalloutBlock{
		BasicBlock: basic(notionapi.BlockTypeCallout),
		Callout: notionapi.Callout{
			RichText: rt,
			Icon:     &notionapi.Icon{Type: "emoji", Emoji: &emoji},
			Color:    color,
		},
	}
}

func Quote(rt []notionapi.RichText, color string) notionapi.Block {
	if color == "" {
		color = DefaultColor
	}
	return &notionapi.QuoteBlock{
		BasicBlock: basic(notionapi.BlockTypeQuote),
		Quote: notionapi.Quote{
			RichText: rt,
			Color:    color,
		},
	}
}

func Divider() notionapi.Block {
	return &notionapi.DividerBlock{
		BasicBlock: basic(notionapi.BlockTypeDivider),
		Divider:    notionapi.Divider{},
	}
}

func Toggle(rt []notionapi.RichText, color string) notionapi.Block {
	if color == "" {
		color = DefaultColor
	}
	return &notionapi.ToggleBlock{
		BasicBlock: basic(notionapi.BlockTypeToggle),
		Toggle: notionapi.Toggle{
			RichText: rt,
			Color:    color,
		},
	}
}

// Code tanpa language jatuh ke python.
func Code(rt []notionapi.RichText, language string) notionapi.Block {
	if language == "" {
		language = "python"
	}
	return &notionapi.CodeBlock{
		BasicBlock: basic(notionapi.BlockTypeCode),
		Code: notionapi.Code{
			RichText: rt,
			Language: language,
			Caption:  []notionapi.RichText{},
		},
	}
}

func ToDo(rt []notionapi.RichText, checked bool, color string) notionapi.Block {
	if color == "" {
		color = DefaultColor
	}
	return &notionapi.ToDoBlock{
		BasicBlock: basic(notionapi.BlockTypeToDo),
		ToDo: notionapi.ToDo{
			RichText: rt,
			Checked:  checked,
			Color:    color,
		},
	}
}

func BulletedListItem(rt []notionapi.RichText) notionapi.Block {
	return &notionapi.BulletedListItemBlock{
		BasicBlock: basic(notionapi.BlockTypeBulletedListItem),
		BulletedListItem: notionapi.ListItem{
			RichText: rt,
		},
	}
}

func NumberedListItem(rt []notionapi.RichText) notionapi.Block {
	return &notionapi.NumberedListItemBlock{
		BasicBlock: basic(notionapi.BlockTypeNumberedListItem),
		NumberedListItem: notionapi.ListItem{
			RichText: rt,
		},
	}
}

func TableOfContents() notionapi.Block {
	return &notionapi.TableOfContentsBlock{
		BasicBlock: basic(notionapi.BlockTypeTableOfContents),
		TableOfContents: notionapi.TableOfContents{
			Color: DefaultColor,
		},
	}
}

func Breadcrumb() notionapi.Block {
	return &notionapi.BreadcrumbBlock{
		BasicBlock: basic(notionapi.BlockTypeBreadcrumb),
		Breadcrumb: notionapi.Breadcrumb{},
	}
}

func Equation(expression string) notionapi.Block {
	if expression == "" {
		expression = "E = mc^2"
	}
	return &notionapi.EquationBlock{
		BasicBlock: basic(notionapi.BlockTypeEquation),
		Equation: notionapi.Equation{
			Expression: expression,
		},
	}
}

// Table membuat table beserta seluruh row-nya. Cell header diisi placeholder
// "Header N" / "Row N", cell data dikosongkan; header kolom menang atas header baris
// di cell (0,0).
func Table(width, height int, hasColumnHeader, hasRowHeader bool) notionapi.Block {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	children := make(notionapi.Blocks, 0, height)
	for row := 0; row < height; row++ {
		cells := make([][]notionapi.RichText, 0, width)
		for col := 0; col < width; col++ {
			var content string
			switch {
			case hasColumnHeader && row == 0:
				content = fmt.Sprintf("Header %d", col+1)
			case hasRowHeader && col == 0:
				content = fmt.Sprintf("Row %d", row+1)
			}
			cells = append(cells, []notionapi.RichText{richtext.Plain(content)})
		}
		children = append(children, &notionapi.TableRowBlock{
			BasicBlock: basic(notionapi.BlockTypeTableRowBlock),
			TableRow: notionapi.TableRow{
				Cells: cells,
			},
		})
	}

	return &notionapi.TableBlock{
		BasicBlock: basic(notionapi.BlockTypeTableBlock),
		Table: notionapi.Table{
			TableWidth:      width,
			HasColumnHeader: hasColumnHeader,
			HasRowHeader:    hasRowHeader,
			Children:        children,
		},
	}
}

func externalFile(url string) *notionapi.FileObject {
	return &notionapi.FileObject{URL: url}
}

func caption(text string) []notionapi.RichText {
	if text == "" {
		return nil
	}
	return []notionapi.RichText{richtext.Plain(text)}
}

func Image(url, captionText string) notionapi.Block {
	return &notionapi.ImageBlock{
		BasicBlock: basic(notionapi.BlockTypeImage),
		Image: notionapi.Image{
			Type:     notionapi.FileTypeExternal,
			External: externalFile(url),
			Caption:  caption(captionText),
		},
	}
}

func Video(url, captionText string) notionapi.Block {
	return &notionapi.VideoBlock{
		BasicBlock: basic(notionapi.BlockTypeVideo),
		Video: notionapi.Video{
			Type:     notionapi.FileTypeExternal,
			External: externalFile(url),
			Caption:  caption(captionText),
		},
	}
}

func Embed(url, captionText string) notionapi.Block {
	return &notionapi.EmbedBlock{
		BasicBlock: basic(notionapi.BlockTypeEmbed),
		Embed: notionapi.Embed{
			URL:     url,
			Caption: caption(captionText),
		},
	}
}

// Link membuat paragraph yang berisi satu rich text ber-link (bukan block bookmark).
// Title kosong jatuh ke URL-nya sendiri.
func Link(url, title string) notionapi.Block {
	text := title
	if text == "" {
		text = url
	}
	return Paragraph([]notionapi.RichText{richtext.Linked(text, url)}, DefaultColor)
}

func Bookmark(url, captionText string) notionapi.Block {
	return &notionapi.BookmarkBlock{
		BasicBlock: basic(notionapi.BlockTypeBookmark),
		Bookmark: notionapi.Bookmark{
			URL:     url,
			Caption: caption(captionText),
		},
	}
}
