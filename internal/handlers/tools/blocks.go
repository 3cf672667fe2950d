// internal/handlers/tools/blocks.go
// Tool block: satu handler per jenis block, semua bermuara ke
// blocks.children.append. Data-shaping-nya ada di pkg/blocks & pkg/richtext.

package tools

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/blocks"
	"github.com/L1xux/notion-agent/pkg/richtext"
)

// appendToPage menempelkan block ke page/parent dan menulis envelope hasilnya.
// Satu invocation = maksimal satu network call.
func appendToPage(w http.ResponseWriter, r *http.Request, op, pageID string, children ...notionapi.Block) {
	if blocksAPI == nil {
		writeFail(w, "blocks api not configured")
		return
	}
	if strings.TrimSpace(pageID) == "" {
		writeFail(w, "page_id is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	resp, err := blocksAPI.AppendChildren(ctx, notionapi.BlockID(pageID), &notionapi.AppendBlockChildrenRequest{
		Children: children,
	})
	if err != nil {
		writeFailErr(w, op, err)
		return
	}
	writeOK(w, resp)
}

func plainRT(text string) []notionapi.RichText {
	return []notionapi.RichText{richtext.Plain(text)}
}

// ---- param structs ----

type appendTextReq struct {
	PageID  string `json:"page_id"`
	Text    string `json:"text"`
	Color   string `json:"color,omitempty"`
	Level   int    `json:"level,omitempty"`    // heading
	Icon    string `json:"icon,omitempty"`     // callout
	Lang    string `json:"language,omitempty"` // code
	Checked bool   `json:"checked,omitempty"`  // to_do
}

func decodeTextReq(w http.ResponseWriter, r *http.Request, requireText bool) (appendTextReq, bool) {
	var in appendTextReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return in, false
	}
	if requireText && strings.TrimSpace(in.Text) == "" {
		writeFail(w, "text is required")
		return in, false
	}
	return in, true
}

// ---- text blocks ----

func AppendHeadingHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_heading", in.PageID, blocks.Heading(plainRT(in.Text), in.Level, in.Color, false))
}

func AppendParagraphHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_paragraph", in.PageID, blocks.Paragraph(plainRT(in.Text), in.Color))
}

func AppendCalloutHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_callout", in.PageID, blocks.Callout(plainRT(in.Text), in.Icon, in.Color))
}

func AppendQuoteHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_quote", in.PageID, blocks.Quote(plainRT(in.Text), in.Color))
}

func AppendToggleHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_toggle", in.PageID, blocks.Toggle(plainRT(in.Text), in.Color))
}

func AppendCodeHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_code", in.PageID, blocks.Code(plainRT(in.Text), in.Lang))
}

func AppendTodoHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_todo", in.PageID, blocks.ToDo(plainRT(in.Text), in.Checked, in.Color))
}

func AppendBulletedListItemHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_bulleted_list_item", in.PageID, blocks.BulletedListItem(plainRT(in.Text)))
}

func AppendNumberedListItemHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, true)
	if !ok {
		return
	}
	appendToPage(w, r, "append_numbered_list_item", in.PageID, blocks.NumberedListItem(plainRT(in.Text)))
}

// ---- structural blocks (tanpa text) ----

func AppendDividerHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, false)
	if !ok {
		return
	}
	appendToPage(w, r, "append_divider", in.PageID, blocks.Divider())
}

func AppendTableOfContentsHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, false)
	if !ok {
		return
	}
	appendToPage(w, r, "append_table_of_contents", in.PageID, blocks.TableOfContents())
}

func AppendBreadcrumbHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeTextReq(w, r, false)
	if !ok {
		return
	}
	appendToPage(w, r, "append_breadcrumb", in.PageID, blocks.Breadcrumb())
}

type appendEquationReq struct {
	PageID     string `json:"page_id"`
	Expression string `json:"expression,omitempty"`
}

func AppendEquationHandler(w http.ResponseWriter, r *http.Request) {
	var in appendEquationReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	appendToPage(w, r, "append_equation", in.PageID, blocks.Equation(in.Expression))
}

type appendTableReq struct {
	PageID          string `json:"page_id"`
	TableWidth      int    `json:"table_width,omitempty"`
	TableHeight     int    `json:"table_height,omitempty"`
	HasColumnHeader bool   `json:"has_column_header,omitempty"`
	HasRowHeader    bool   `json:"has_row_header,omitempty"`
}

func AppendTableHandler(w http.ResponseWriter, r *http.Request) {
	var in appendTableReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	appendToPage(w, r, "append_table", in.PageID,
		blocks.Table(in.TableWidth, in.TableHeight, in.HasColumnHeader, in.HasRowHeader))
}

// ---- media & web blocks ----

type appendMediaReq struct {
	PageID      string `json:"page_id"`
	ImageURL    string `json:"image_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	EmbedURL    string `json:"embed_url,omitempty"`
	BookmarkURL string `json:"bookmark_url,omitempty"`
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

func requireURL(w http.ResponseWriter, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		writeFail(w, field+" is required")
		return false
	}
	return true
}

func AppendImageHandler(w http.ResponseWriter, r *http.Request) {
	var in appendMediaReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if !requireURL(w, "image_url", in.ImageURL) {
		return
	}
	appendToPage(w, r, "append_image", in.PageID, blocks.Image(strings.TrimSpace(in.ImageURL), in.Caption))
}

func AppendVideoHandler(w http.ResponseWriter, r *http.Request) {
	var in appendMediaReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if !requireURL(w, "video_url", in.VideoURL) {
		return
	}
	appendToPage(w, r, "append_video", in.PageID, blocks.Video(strings.TrimSpace(in.VideoURL), in.Caption))
}

func AppendEmbedHandler(w http.ResponseWriter, r *http.Request) {
	var in appendMediaReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if !requireURL(w, "embed_url", in.EmbedURL) {
		return
	}
	appendToPage(w, r, "append_embed", in.PageID, blocks.Embed(strings.TrimSpace(in.EmbedURL), in.Caption))
}

func AppendLinkHandler(w http.ResponseWriter, r *http.Request) {
	var in appendMediaReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if !requireURL(w, "url", in.URL) {
		return
	}
	appendToPage(w, r, "append_link", in.PageID, blocks.Link(strings.TrimSpace(in.URL), in.Title))
}

func AppendBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	var in appendMediaReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if !requireURL(w, "bookmark_url", in.BookmarkURL) {
		return
	}
	appendToPage(w, r, "append_bookmark", in.PageID, blocks.Bookmark(strings.TrimSpace(in.BookmarkURL), in.Caption))
}

// ---- bulk append ----

// BlockConfig mendeskripsikan satu block dalam append_blocks.
// rich_text menang atas text bila keduanya diisi.
type BlockConfig struct {
	Type       string             `json:"type"`
	Text       string             `json:"text,omitempty"`
	RichText   []richtext.Segment `json:"rich_text,omitempty"`
	Color      string             `json:"color,omitempty"`
	Icon       string             `json:"icon,omitempty"`
	Language   string             `json:"language,omitempty"`
	Checked    bool               `json:"checked,omitempty"`
	Expression string             `json:"expression,omitempty"`
	URL        string             `json:"url,omitempty"`
	Caption    string             `json:"caption,omitempty"`
}

func (c BlockConfig) richText() []notionapi.RichText {
	if len(c.RichText) > 0 {
		return richtext.FromSegments(c.RichText)
	}
	return plainRT(c.Text)
}

// BuildBlock menerjemahkan satu config menjadi block SDK.
func BuildBlock(c BlockConfig) (notionapi.Block, error) {
	switch c.Type {
	case "paragraph", "":
		return blocks.Paragraph(c.richText(), c.Color), nil
	case "heading_1":
		return blocks.Heading(c.richText(), 1, c.Color, false), nil
	case "heading_2":
		return blocks.Heading(c.richText(), 2, c.Color, false), nil
	case "heading_3":
		return blocks.Heading(c.richText(), 3, c.Color, false), nil
	case "callout":
		return blocks.Callout(c.richText(), c.Icon, c.Color), nil
	case "quote":
		return blocks.Quote(c.richText(), c.Color), nil
	case "toggle":
		return blocks.Toggle(c.richText(), c.Color), nil
	case "code":
		return blocks.Code(c.richText(), c.Language), nil
	case "to_do":
		return blocks.ToDo(c.richText(), c.Checked, c.Color), nil
	case "bulleted_list_item":
		return blocks.BulletedListItem(c.richText()), nil
	case "numbered_list_item":
		return blocks.NumberedListItem(c.richText()), nil
	case "divider":
		return blocks.Divider(), nil
	case "table_of_contents":
		return blocks.TableOfContents(), nil
	case "breadcrumb":
		return blocks.Breadcrumb(), nil
	case "equation":
		return blocks.Equation(c.Expression), nil
	case "image":
		return blocks.Image(c.URL, c.Caption), nil
	case "video":
		return blocks.Video(c.URL, c.Caption), nil
	case "embed":
		return blocks.Embed(c.URL, c.Caption), nil
	case "bookmark":
		return blocks.Bookmark(c.URL, c.Caption), nil
	default:
		return nil, fmt.Errorf("unsupported block type: %s", c.Type)
	}
}

type appendBlocksReq struct {
	PageID string        `json:"page_id"`
	Blocks []BlockConfig `json:"blocks"`
}

// AppendBlocksHandler menempelkan banyak block sekaligus dalam satu call
// (children list), seperti jalur append milik pipeline compose.
func AppendBlocksHandler(w http.ResponseWriter, r *http.Request) {
	var in appendBlocksReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if len(in.Blocks) == 0 {
		writeFail(w, "blocks is required")
		return
	}

	children := make([]notionapi.Block, 0, len(in.Blocks))
	for i, cfg := range in.Blocks {
		b, err := BuildBlock(cfg)
		if err != nil {
			writeFail(w, fmt.Sprintf("blocks[%d]: %v", i, err))
			return
		}
		children = append(children, b)
	}
	appendToPage(w, r, "append_blocks", in.PageID, children...)
}

// ---- read/delete ----

type blockIDReq struct {
	BlockID     string `json:"block_id"`
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

func decodeBlockIDReq(w http.ResponseWriter, r *http.Request) (blockIDReq, bool) {
	var in blockIDReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return in, false
	}
	if strings.TrimSpace(in.BlockID) == "" {
		writeFail(w, "block_id is required")
		return in, false
	}
	return in, true
}

func RetrieveBlockHandler(w http.ResponseWriter, r *http.Request) {
	if blocksAPI == nil {
		writeFail(w, "blocks api not configured")
		return
	}
	in, ok := decodeBlockIDReq(w, r)
	if !ok {
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	block, err := blocksAPI.Get(ctx, notionapi.BlockID(in.BlockID))
	if err != nil {
		writeFailErr(w, "retrieve_block", err)
		return
	}
	writeOK(w, block)
}

func RetrieveBlockChildrenHandler(w http.ResponseWriter, r *http.Request) {
	if blocksAPI == nil {
		writeFail(w, "blocks api not configured")
		return
	}
	in, ok := decodeBlockIDReq(w, r)
	if !ok {
		return
	}

	var pg *notionapi.Pagination
	if in.PageSize > 0 || in.StartCursor != "" {
		pg = &notionapi.Pagination{
			StartCursor: notionapi.Cursor(in.StartCursor),
			PageSize:    in.PageSize,
		}
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	resp, err := blocksAPI.GetChildren(ctx, notionapi.BlockID(in.BlockID), pg)
	if err != nil {
		writeFailErr(w, "retrieve_block_children", err)
		return
	}
	writeOK(w, resp)
}

func DeleteBlockHandler(w http.ResponseWriter, r *http.Request) {
	if blocksAPI == nil {
		writeFail(w, "blocks api not configured")
		return
	}
	in, ok := decodeBlockIDReq(w, r)
	if !ok {
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	block, err := blocksAPI.Delete(ctx, notionapi.BlockID(in.BlockID))
	if err != nil {
		writeFailErr(w, "delete_block", err)
		return
	}
	writeOK(w, block)
}
