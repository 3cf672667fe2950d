// pkg/richtext/richtext.go
// Builder rich text untuk Notion API. Murni data-shaping, tanpa network call.

package richtext

import (
	"github.com/jomei/notionapi"
)

// Options memetakan parameter skalar ke annotation Notion.
type Options struct {
	LinkURL       string `json:"link_url,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Code          bool   `json:"code,omitempty"`
	Color         string `json:"color,omitempty"` // default|red|blue|green|...
}

// Segment adalah konfigurasi satu potong rich text (content + formatting).
// Bentuknya sengaja flat supaya gampang diisi dari JSON params tool maupun output LLM.
type Segment struct {
	Content string `json:"content"`
	Options
}

// New membuat satu rich text object dari content + options.
func New(content string, opt Options) notionapi.RichText {
	color := notionapi.ColorDefault
	if opt.Color != "" {
		color = notionapi.Color(opt.Color)
	}

	text := &notionapi.Text{Content: content}
	if opt.LinkURL != "" {
		text.Link = &notionapi.Link{Url: opt.LinkURL}
	}

	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: text,
		Annotations: &notionapi.Annotations{
			Bold:          opt.Bold,
			Italic:        opt.Italic,
			Underline:     opt.Underline,
			Strikethrough: opt.Strikethrough,
			Code:          opt.Code,
			Color:         color,
		},
		PlainText: content,
	}
}

// Plain membuat rich text tanpa formatting sama sekali.
func Plain(content string) notionapi.RichText {
	return New(content, Options{})
}

// Bold adalah shortcut: hanya bold=true, annotation lain default.
func Bold(content string) notionapi.RichText {
	return New(content, Options{Bold: true})
}

// Linked membuat rich text yang mengarah ke sebuah URL.
func Linked(content, url string) notionapi.RichText {
	return New(content, Options{LinkURL: url})
}

// FromSegments mengubah list konfigurasi segment menjadi array rich text.
// Urutan input dipertahankan.
func FromSegments(segments []Segment) []notionapi.RichText {
	out := make([]notionapi.RichText, 0, len(segments))
	for _, s := range segments {
		out = append(out, New(s.Content, s.Options))
	}
	return out
}

// PlainTextOf menggabungkan plain_text dari seluruh array (dipakai ekstraksi judul page).
func PlainTextOf(items []notionapi.RichText) string {
	var out string
	for _, it := range items {
		out += it.PlainText
	}
	return out
}
