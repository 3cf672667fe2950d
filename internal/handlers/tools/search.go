// internal/handlers/tools/search.go
// Tool: search & search_pages - cari page workspace berdasarkan judul.

package tools

import (
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/L1xux/notion-agent/pkg/richtext"
)

// PageInfo adalah proyeksi ringkas satu page hasil pencarian.
type PageInfo struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	CreatedTime    string `json:"created_time"`
	LastEditedTime string `json:"last_edited_time"`
}

type SearchData struct {
	Pages      []PageInfo `json:"pages"`
	TotalFound int        `json:"total_found"`
}

type searchReq struct {
	Query  string `json:"query,omitempty"`
	Object string `json:"object,omitempty"` // "page" | "database"
}

// SearchHandler: raw search, response SDK diteruskan apa adanya.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	if searchAPI == nil {
		writeFail(w, "search api not configured")
		return
	}

	var in searchReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}

	req := &notionapi.SearchRequest{Query: strings.TrimSpace(in.Query)}
	if obj := strings.TrimSpace(in.Object); obj != "" {
		req.Filter = notionapi.SearchFilter{Property: "object", Value: obj}
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	resp, err := searchAPI.Do(ctx, req)
	if err != nil {
		writeFailErr(w, "search", err)
		return
	}
	writeOK(w, resp)
}

type searchPagesReq struct {
	PageTitle string `json:"page_title"`
}

// SearchPagesHandler: cari page berdasarkan judul (partial, case-insensitive),
// kembalikan hanya page yang paling baru dibuat.
func SearchPagesHandler(w http.ResponseWriter, r *http.Request) {
	if searchAPI == nil {
		writeFail(w, "search api not configured")
		return
	}

	var in searchPagesReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.PageTitle) == "" {
		writeFail(w, "page_title is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	resp, err := searchAPI.Do(ctx, &notionapi.SearchRequest{
		Query:  in.PageTitle,
		Filter: notionapi.SearchFilter{Property: "object", Value: "page"},
	})
	if err != nil {
		writeFailErr(w, "search_pages", err)
		return
	}

	matches := filterMatchingPages(resp.Results, in.PageTitle)
	recent := mostRecentPage(matches)

	data := SearchData{Pages: []PageInfo{}}
	if recent != nil {
		data.Pages = append(data.Pages, *recent)
		data.TotalFound = 1
	}
	writeOK(w, data)
}

// cleanTitle membuang kutip & whitespace di pinggir (judul sering datang
// dari output LLM yang masih membawa tanda kutip).
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// PageTitleOf mengekstrak judul dari properti page (property bertipe title).
func PageTitleOf(p *notionapi.Page) string {
	for _, prop := range p.Properties {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			return richtext.PlainTextOf(tp.Title)
		}
	}
	return ""
}

// filterMatchingPages mencocokkan judul page dengan regex case-insensitive.
// Karakter spesial di search term di-escape demi keamanan.
func filterMatchingPages(results []notionapi.Object, term string) []PageInfo {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(cleanTitle(term)))

	var out []PageInfo
	for _, obj := range results {
		page, ok := obj.(*notionapi.Page)
		if !ok {
			continue
		}
		title := cleanTitle(PageTitleOf(page))
		if !pattern.MatchString(title) {
			continue
		}
		out = append(out, PageInfo{
			ID:             string(page.ID),
			Title:          title,
			URL:            page.URL,
			CreatedTime:    formatTime(page.CreatedTime),
			LastEditedTime: formatTime(page.LastEditedTime),
		})
	}
	return out
}

// formatTime menormalkan ke UTC supaya string timestamp bisa dibandingkan
// leksikografis tanpa terganggu offset zona.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// mostRecentPage memilih page dengan created_time terbaru.
func mostRecentPage(pages []PageInfo) *PageInfo {
	if len(pages) == 0 {
		return nil
	}
	sorted := make([]PageInfo, len(pages))
	copy(sorted, pages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedTime > sorted[j].CreatedTime
	})
	return &sorted[0]
}
