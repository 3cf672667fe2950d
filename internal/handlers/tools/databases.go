// internal/handlers/tools/databases.go
// Tool database: retrieve, query (filter/sort sederhana), dan create entry.

package tools

import (
	"net/http"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/richtext"
)

type retrieveDatabaseReq struct {
	DatabaseID string `json:"database_id"`
}

func RetrieveDatabaseHandler(w http.ResponseWriter, r *http.Request) {
	if databasesAPI == nil {
		writeFail(w, "databases api not configured")
		return
	}
	var in retrieveDatabaseReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.DatabaseID) == "" {
		writeFail(w, "database_id is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	db, err := databasesAPI.Get(ctx, notionapi.DatabaseID(in.DatabaseID))
	if err != nil {
		writeFailErr(w, "retrieve_database", err)
		return
	}
	writeOK(w, db)
}

type queryDatabaseReq struct {
	DatabaseID string `json:"database_id"`
	// filter contains-match pada satu properti rich_text/title.
	FilterProperty string `json:"filter_property,omitempty"`
	FilterContains string `json:"filter_contains,omitempty"`
	SortProperty   string `json:"sort_property,omitempty"`
	SortDirection  string `json:"sort_direction,omitempty"` // ascending|descending
	PageSize       int    `json:"page_size,omitempty"`
	StartCursor    string `json:"start_cursor,omitempty"`
}

func QueryDatabaseHandler(w http.ResponseWriter, r *http.Request) {
	if databasesAPI == nil {
		writeFail(w, "databases api not configured")
		return
	}
	var in queryDatabaseReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.DatabaseID) == "" {
		writeFail(w, "database_id is required")
		return
	}

	req := &notionapi.DatabaseQueryRequest{
		StartCursor: notionapi.Cursor(in.StartCursor),
		PageSize:    in.PageSize,
	}
	if in.FilterProperty != "" && in.FilterContains != "" {
		req.Filter = notionapi.PropertyFilter{
			Property: in.FilterProperty,
			RichText: &notionapi.TextFilterCondition{
				Contains: in.FilterContains,
			},
		}
	}
	if in.SortProperty != "" {
		dir := notionapi.SortOrderASC
		if strings.EqualFold(in.SortDirection, "descending") {
			dir = notionapi.SortOrderDESC
		}
		req.Sorts = []notionapi.SortObject{{
			Property:  in.SortProperty,
			Direction: dir,
		}}
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	resp, err := databasesAPI.Query(ctx, notionapi.DatabaseID(in.DatabaseID), req)
	if err != nil {
		writeFailErr(w, "query_database", err)
		return
	}
	writeOK(w, resp)
}

type createDatabaseEntryReq struct {
	DatabaseID string `json:"database_id"`
	Title      string `json:"title"`
	// properti rich_text tambahan: nama properti -> isi teks.
	Properties map[string]string `json:"properties,omitempty"`
	Icon       string            `json:"icon,omitempty"`
}

// CreateDatabaseEntryHandler membuat page baru sebagai row database.
// Properti non-title diperlakukan sebagai rich_text; tipe lain di luar scope.
func CreateDatabaseEntryHandler(w http.ResponseWriter, r *http.Request) {
	if pagesAPI == nil {
		writeFail(w, "pages api not configured")
		return
	}
	var in createDatabaseEntryReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.DatabaseID) == "" {
		writeFail(w, "database_id is required")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		writeFail(w, "title is required")
		return
	}

	props := titleProperties(in.Title)
	for name, text := range in.Properties {
		if name == "" || name == "title" {
			continue
		}
		props[name] = notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{richtext.Plain(text)},
		}
	}

	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(in.DatabaseID),
		},
		Properties: props,
	}
	if in.Icon != "" {
		emoji := notionapi.Emoji(in.Icon)
		req.Icon = &notionapi.Icon{Type: "emoji", Emoji: &emoji}
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	page, err := pagesAPI.Create(ctx, req)
	if err != nil {
		writeFailErr(w, "create_database_entry", err)
		return
	}
	writeOK(w, page)
}
