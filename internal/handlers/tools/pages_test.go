// internal/handlers/tools/pages_test.go

package tools_test

import (
	"context"
	"testing"

	"github.com/jomei/notionapi"

	toolhandlers "github.com/L1xux/notion-agent/internal/handlers/tools"
)

type fakePagesAPI struct {
	page      *notionapi.Page
	err       error
	gotCreate *notionapi.PageCreateRequest
	gotUpdate *notionapi.PageUpdateRequest
	gotID     notionapi.PageID
}

func (f *fakePagesAPI) Get(ctx context.Context, id notionapi.PageID) (*notionapi.Page, error) {
	f.gotID = id
	return f.page, f.err
}

func (f *fakePagesAPI) Create(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.gotCreate = req
	return f.page, f.err
}

func (f *fakePagesAPI) Update(ctx context.Context, id notionapi.PageID, req *notionapi.PageUpdateRequest) (*notionapi.Page, error) {
	f.gotID = id
	f.gotUpdate = req
	return f.page, f.err
}

func TestCreatePageDefaultsToPageParent(t *testing.T) {
	fake := &fakePagesAPI{page: &notionapi.Page{ID: "new"}}
	toolhandlers.SetPagesAPI(fake)

	resp := invokeHandler(t, toolhandlers.CreatePageHandler, map[string]string{
		"parent_id": "parent-1",
		"title":     "Halaman Baru",
	})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.gotCreate.Parent.Type != notionapi.ParentTypePageID {
		t.Fatalf("expected page parent, got %s", fake.gotCreate.Parent.Type)
	}
	if fake.gotCreate.Parent.PageID != "parent-1" {
		t.Fatalf("expected parent id forwarded, got %s", fake.gotCreate.Parent.PageID)
	}
}

func TestCreatePageDatabaseParentAndIcon(t *testing.T) {
	fake := &fakePagesAPI{page: &notionapi.Page{ID: "new"}}
	toolhandlers.SetPagesAPI(fake)

	resp := invokeHandler(t, toolhandlers.CreatePageHandler, map[string]string{
		"parent_id":   "db-1",
		"parent_type": "database",
		"title":       "Row",
		"icon":        "🚀",
	})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.gotCreate.Parent.Type != notionapi.ParentTypeDatabaseID {
		t.Fatalf("expected database parent, got %s", fake.gotCreate.Parent.Type)
	}
	if fake.gotCreate.Icon == nil || fake.gotCreate.Icon.Emoji == nil || string(*fake.gotCreate.Icon.Emoji) != "🚀" {
		t.Fatalf("expected emoji icon forwarded, got %+v", fake.gotCreate.Icon)
	}
}

func TestCreatePageValidatesBeforeCalling(t *testing.T) {
	fake := &fakePagesAPI{}
	toolhandlers.SetPagesAPI(fake)

	resp := invokeHandler(t, toolhandlers.CreatePageHandler, map[string]string{"parent_id": "p"})
	if resp.Success {
		t.Fatalf("expected failure for missing title")
	}
	if fake.gotCreate != nil {
		t.Fatalf("API should not be called on validation failure")
	}
}

func TestArchiveRestoreTogglesArchivedFlag(t *testing.T) {
	fake := &fakePagesAPI{page: &notionapi.Page{ID: "p1"}}
	toolhandlers.SetPagesAPI(fake)

	resp := invokeHandler(t, toolhandlers.ArchivePageHandler, map[string]string{"page_id": "p1"})
	if !resp.Success {
		t.Fatalf("archive: expected success, got %s", resp.Error)
	}
	if !fake.gotUpdate.Archived {
		t.Fatalf("archive: expected archived=true")
	}

	resp = invokeHandler(t, toolhandlers.RestorePageHandler, map[string]string{"page_id": "p1"})
	if !resp.Success {
		t.Fatalf("restore: expected success, got %s", resp.Error)
	}
	if fake.gotUpdate.Archived {
		t.Fatalf("restore: expected archived=false")
	}
}

func TestUpdatePagePatchesTitle(t *testing.T) {
	fake := &fakePagesAPI{page: &notionapi.Page{ID: "p1"}}
	toolhandlers.SetPagesAPI(fake)

	resp := invokeHandler(t, toolhandlers.UpdatePageHandler, map[string]string{
		"page_id": "p1",
		"title":   "Judul Baru",
	})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	tp, ok := fake.gotUpdate.Properties["title"].(notionapi.TitleProperty)
	if !ok {
		t.Fatalf("expected title property in update, got %+v", fake.gotUpdate.Properties)
	}
	if len(tp.Title) != 1 || tp.Title[0].Text.Content != "Judul Baru" {
		t.Fatalf("unexpected title payload: %+v", tp.Title)
	}
}
