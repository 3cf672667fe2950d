// internal/handlers/tools/comments.go
// Tool komentar: tulis komentar baru di page dan baca thread yang ada.

package tools

import (
	"net/http"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/richtext"
)

type createCommentReq struct {
	PageID string `json:"page_id"`
	Text   string `json:"text"`
}

func CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	if commentsAPI == nil {
		writeFail(w, "comments api not configured")
		return
	}
	var in createCommentReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.PageID) == "" {
		writeFail(w, "page_id is required")
		return
	}
	if strings.TrimSpace(in.Text) == "" {
		writeFail(w, "text is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	comment, err := commentsAPI.Create(ctx, &notionapi.CommentCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(in.PageID),
		},
		RichText: []notionapi.RichText{richtext.Plain(in.Text)},
	})
	if err != nil {
		writeFailErr(w, "create_comment", err)
		return
	}
	writeOK(w, comment)
}

type listCommentsReq struct {
	BlockID     string `json:"block_id"`
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// ListCommentsHandler menerima page_id ataupun block_id; API comments Notion
// memakai satu parameter block_id untuk keduanya.
func ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	if commentsAPI == nil {
		writeFail(w, "comments api not configured")
		return
	}
	var in struct {
		listCommentsReq
		PageID string `json:"page_id,omitempty"`
	}
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	id := in.BlockID
	if strings.TrimSpace(id) == "" {
		id = in.PageID
	}
	if strings.TrimSpace(id) == "" {
		writeFail(w, "block_id is required")
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

	resp, err := commentsAPI.Get(ctx, notionapi.BlockID(id), pg)
	if err != nil {
		writeFailErr(w, "list_comments", err)
		return
	}
	writeOK(w, resp)
}
