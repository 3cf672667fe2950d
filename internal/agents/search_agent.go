// internal/agents/search_agent.go
// Agent search: judul/redaksi bebas -> page paling baru yang cocok,
// lewat tool search_pages in-process.

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/L1xux/notion-agent/internal/tools"
)

// ResolvedPage adalah page hasil resolusi judul.
type ResolvedPage struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	CreatedTime    string `json:"created_time"`
	LastEditedTime string `json:"last_edited_time"`
}

// ResolvePage mencari page berdasarkan judul dan mengembalikan kandidat
// terbaru. Error bila tool gagal atau tidak ada yang cocok.
func ResolvePage(ctx context.Context, title string) (ResolvedPage, error) {
	if strings.TrimSpace(title) == "" {
		return ResolvedPage{}, fmt.Errorf("empty page title")
	}

	params, _ := json.Marshal(map[string]string{"page_title": title})
	resp := tools.Invoke(ctx, "search_pages", params)
	if !resp.Success {
		return ResolvedPage{}, fmt.Errorf("search_pages: %s", resp.Error)
	}

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return ResolvedPage{}, fmt.Errorf("search_pages data: %w", err)
	}
	var data struct {
		Pages      []ResolvedPage `json:"pages"`
		TotalFound int            `json:"total_found"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return ResolvedPage{}, fmt.Errorf("search_pages decode: %w", err)
	}
	if len(data.Pages) == 0 {
		return ResolvedPage{}, fmt.Errorf("no page matching %q", title)
	}
	return data.Pages[0], nil
}
