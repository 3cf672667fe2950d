// internal/handlers/tools/pages.go
// Tool page: retrieve/create/update/archive/restore.

package tools

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/richtext"
)

func titleProperties(title string) notionapi.Properties {
	return notionapi.Properties{
		"title": notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{richtext.Plain(title)},
		},
	}
}

type retrievePageReq struct {
	PageID string `json:"page_id"`
}

func RetrievePageHandler(w http.ResponseWriter, r *http.Request) {
	if pagesAPI == nil {
		writeFail(w, "pages api not configured")
		return
	}

	var in retrievePageReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.PageID) == "" {
		writeFail(w, "page_id is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	page, err := pagesAPI.Get(ctx, notionapi.PageID(in.PageID))
	if err != nil {
		writeFailErr(w, "retrieve_page", err)
		return
	}
	writeOK(w, page)
}

type createPageReq struct {
	ParentID   string        `json:"parent_id"`
	ParentType string        `json:"parent_type,omitempty"` // "page" (default) | "database"
	Title      string        `json:"title"`
	Icon       string        `json:"icon,omitempty"`
	Children   []BlockConfig `json:"children,omitempty"` // block awal opsional
}

func CreatePageHandler(w http.ResponseWriter, r *http.Request) {
	if pagesAPI == nil {
		writeFail(w, "pages api not configured")
		return
	}

	var in createPageReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.ParentID) == "" {
		writeFail(w, "parent_id is required")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		writeFail(w, "title is required")
		return
	}

	req := &notionapi.PageCreateRequest{
		Properties: titleProperties(in.Title),
	}
	if strings.EqualFold(in.ParentType, "database") {
		req.Parent = notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(in.ParentID),
		}
	} else {
		req.Parent = notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(in.ParentID),
		}
	}
	if icon := strings.TrimSpace(in.Icon); icon != "" {
		emoji := notionapi.Emoji(icon)
		req.Icon = &notionapi.Icon{Type: "emoji", Emoji: &emoji}
	}
	for i, cfg := range in.Children {
		b, err := BuildBlock(cfg)
		if err != nil {
			writeFail(w, fmt.Sprintf("children[%d]: %v", i, err))
			return
		}
		req.Children = append(req.Children, b)
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	page, err := pagesAPI.Create(ctx, req)
	if err != nil {
		writeFailErr(w, "create_page", err)
		return
	}
	writeOK(w, page)
}

type updatePageReq struct {
	PageID string `json:"page_id"`
	Title  string `json:"title"`
}

func UpdatePageHandler(w http.ResponseWriter, r *http.Request) {
	if pagesAPI == nil {
		writeFail(w, "pages api not configured")
		return
	}

	var in updatePageReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.PageID) == "" {
		writeFail(w, "page_id is required")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		writeFail(w, "title is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	page, err := pagesAPI.Update(ctx, notionapi.PageID(in.PageID), &notionapi.PageUpdateRequest{
		Properties: titleProperties(in.Title),
	})
	if err != nil {
		writeFailErr(w, "update_page", err)
		return
	}
	writeOK(w, page)
}

func setArchived(w http.ResponseWriter, r *http.Request, op string, archived bool) {
	if pagesAPI == nil {
		writeFail(w, "pages api not configured")
		return
	}

	var in retrievePageReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.PageID) == "" {
		writeFail(w, "page_id is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	page, err := pagesAPI.Update(ctx, notionapi.PageID(in.PageID), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{},
		Archived:   archived,
	})
	if err != nil {
		writeFailErr(w, op, err)
		return
	}
	writeOK(w, page)
}

func ArchivePageHandler(w http.ResponseWriter, r *http.Request) {
	setArchived(w, r, "archive_page", true)
}

func RestorePageHandler(w http.ResponseWriter, r *http.Request) {
	setArchived(w, r, "restore_page", false)
}
