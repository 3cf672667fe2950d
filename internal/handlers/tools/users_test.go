// internal/handlers/tools/users_test.go

package tools_test

import (
	"context"
	"testing"

	"github.com/jomei/notionapi"

	toolhandlers "github.com/L1xux/notion-agent/internal/handlers/tools"
)

type fakeUsersAPI struct {
	user    *notionapi.User
	resp    *notionapi.UsersListResponse
	err     error
	gotID   notionapi.UserID
	gotPg   *notionapi.Pagination
	meCalls int
}

func (f *fakeUsersAPI) List(ctx context.Context, pg *notionapi.Pagination) (*notionapi.UsersListResponse, error) {
	f.gotPg = pg
	return f.resp, f.err
}

func (f *fakeUsersAPI) Get(ctx context.Context, id notionapi.UserID) (*notionapi.User, error) {
	f.gotID = id
	return f.user, f.err
}

func (f *fakeUsersAPI) Me(ctx context.Context) (*notionapi.User, error) {
	f.meCalls++
	return f.user, f.err
}

func TestListUsersPaginationOptional(t *testing.T) {
	fake := &fakeUsersAPI{resp: &notionapi.UsersListResponse{}}
	toolhandlers.SetUsersAPI(fake)

	resp := invokeHandler(t, toolhandlers.ListUsersHandler, map[string]string{})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.gotPg != nil {
		t.Fatalf("expected no pagination by default, got %+v", fake.gotPg)
	}

	resp = invokeHandler(t, toolhandlers.ListUsersHandler, map[string]any{"page_size": 10})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.gotPg == nil || fake.gotPg.PageSize != 10 {
		t.Fatalf("expected pagination forwarded, got %+v", fake.gotPg)
	}
}

func TestRetrieveUserRequiresID(t *testing.T) {
	fake := &fakeUsersAPI{user: &notionapi.User{}}
	toolhandlers.SetUsersAPI(fake)

	resp := invokeHandler(t, toolhandlers.RetrieveUserHandler, map[string]string{})
	if resp.Success {
		t.Fatalf("expected failure for missing user_id")
	}
	if fake.gotID != "" {
		t.Fatalf("API should not be called on validation failure")
	}

	resp = invokeHandler(t, toolhandlers.RetrieveUserHandler, map[string]string{"user_id": "user-7"})
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.gotID != "user-7" {
		t.Fatalf("expected user id forwarded, got %s", fake.gotID)
	}
}

func TestRetrieveBotUserCallsMe(t *testing.T) {
	fake := &fakeUsersAPI{user: &notionapi.User{Type: notionapi.UserTypeBot}}
	toolhandlers.SetUsersAPI(fake)

	resp := invokeHandler(t, toolhandlers.RetrieveBotUserHandler, nil)
	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.Error)
	}
	if fake.meCalls != 1 {
		t.Fatalf("expected exactly one Me call, got %d", fake.meCalls)
	}
}
