// internal/handlers/tools/blocks_handler_test.go

package tools_test

import (
	"context"
	"testing"

	"github.com/jomei/notionapi"

	toolhandlers "github.com/L1xux/notion-agent/internal/handlers/tools"
)

type fakeBlocksAPI struct {
	err       error
	gotID     notionapi.BlockID
	gotAppend *notionapi.AppendBlockChildrenRequest
	deleted   []notionapi.BlockID
}

func (f *fakeBlocksAPI) AppendChildren(ctx context.Context, id notionapi.BlockID, req *notionapi.AppendBlockChildrenRequest) (*notionapi.AppendBlockChildrenResponse, error) {
	f.gotID = id
	f.gotAppend = req
	if f.err != nil {
		return nil, f.err
	}
	return &notionapi.AppendBlockChildrenResponse{Results: req.Children}, nil
}

func (f *fakeBlocksAPI) Get(ctx context.Context, id notionapi.BlockID) (notionapi.Block, error) {
	f.gotID = id
	return nil, f.err
}

func (f *fakeBlocksAPI) GetChildren(ctx context.Context, id notionapi.BlockID, pg *notionapi.Pagination) (*notionapi.GetChildrenResponse, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &notionapi.GetChildrenResponse{}, nil
}

func (f *fakeBlocksAPI) Delete(ctx context.Context, id notionapi.BlockID) (notionapi.Block, error) {
	f.deleted = append(f.deleted, id)
	return nil, f.err
}

func TestAppendHeadingBuildsHeadingBlock(t *testing.T) {
	fake := &fakeBlocksAPI{}
	toolhandlers.SetBlocksAPI(fake)

	resp := invokeHandler(t, toolhandlers.AppendHeadingHandler, map[string]any{
		"page_id": "page-1",
		"text":    "Bab Satu",
		"level":   2,
	})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.gotID != "page-1" {
		t.Fatalf("expected append on page-1, got %s", fake.gotID)
	}
	if len(fake.gotAppend.Children) != 1 {
		t.Fatalf("expected exactly one child, got %d", len(fake.gotAppend.Children))
	}
	if got := fake.gotAppend.Children[0].GetType(); got != notionapi.BlockTypeHeading2 {
		t.Fatalf("expected heading_2, got %s", got)
	}
}

func TestAppendTextBlocksRequireText(t *testing.T) {
	fake := &fakeBlocksAPI{}
	toolhandlers.SetBlocksAPI(fake)

	resp := invokeHandler(t, toolhandlers.AppendParagraphHandler, map[string]any{"page_id": "p"})
	if resp.Success {
		t.Fatalf("expected failure for missing text")
	}
	if fake.gotAppend != nil {
		t.Fatalf("API should not be called on validation failure")
	}
}

func TestAppendDividerNeedsOnlyPageID(t *testing.T) {
	fake := &fakeBlocksAPI{}
	toolhandlers.SetBlocksAPI(fake)

	resp := invokeHandler(t, toolhandlers.AppendDividerHandler, map[string]any{"page_id": "p"})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if got := fake.gotAppend.Children[0].GetType(); got != notionapi.BlockTypeDivider {
		t.Fatalf("expected divider, got %s", got)
	}
}

// append_blocks: semua entri valid masuk dalam SATU call append.
func TestAppendBlocksBulkSingleCall(t *testing.T) {
	fake := &fakeBlocksAPI{}
	toolhandlers.SetBlocksAPI(fake)

	resp := invokeHandler(t, toolhandlers.AppendBlocksHandler, map[string]any{
		"page_id": "page-9",
		"blocks": []map[string]any{
			{"type": "heading_1", "text": "Judul"},
			{"type": "paragraph", "rich_text": []map[string]any{
				{"content": "penting", "bold": true, "color": "red"},
				{"content": " dan biasa"},
			}},
			{"type": "divider"},
			{"type": "code", "text": "print('hi')", "language": "python"},
		},
	})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if len(fake.gotAppend.Children) != 4 {
		t.Fatalf("expected 4 children in one call, got %d", len(fake.gotAppend.Children))
	}
	if got := fake.gotAppend.Children[1].GetType(); got != notionapi.BlockTypeParagraph {
		t.Fatalf("expected paragraph at index 1, got %s", got)
	}
}

func TestAppendBlocksRejectsUnknownTypeBeforeCalling(t *testing.T) {
	fake := &fakeBlocksAPI{}
	toolhandlers.SetBlocksAPI(fake)

	resp := invokeHandler(t, toolhandlers.AppendBlocksHandler, map[string]any{
		"page_id": "p",
		"blocks":  []map[string]any{{"type": "hologram", "text": "x"}},
	})
	if resp.Success {
		t.Fatalf("expected failure for unknown block type")
	}
	if fake.gotAppend != nil {
		t.Fatalf("API should not be called when a block is invalid")
	}
}

func TestDeleteBlockForwardsID(t *testing.T) {
	fake := &fakeBlocksAPI{}
	toolhandlers.SetBlocksAPI(fake)

	resp := invokeHandler(t, toolhandlers.DeleteBlockHandler, map[string]any{"block_id": "blk-1"})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if len(fake.deleted) != 1 || fake.deleted[0] != "blk-1" {
		t.Fatalf("expected delete on blk-1, got %v", fake.deleted)
	}
}
