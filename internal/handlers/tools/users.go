// internal/handlers/tools/users.go
// Tool user: daftar member workspace, detail user, dan identitas bot integrasi.

package tools

import (
	"net/http"
	"strings"

	"github.com/jomei/notionapi"
)

type listUsersReq struct {
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

func ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	if usersAPI == nil {
		writeFail(w, "users api not configured")
		return
	}
	var in listUsersReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
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

	resp, err := usersAPI.List(ctx, pg)
	if err != nil {
		writeFailErr(w, "list_users", err)
		return
	}
	writeOK(w, resp)
}

type retrieveUserReq struct {
	UserID string `json:"user_id"`
}

func RetrieveUserHandler(w http.ResponseWriter, r *http.Request) {
	if usersAPI == nil {
		writeFail(w, "users api not configured")
		return
	}
	var in retrieveUserReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.UserID) == "" {
		writeFail(w, "user_id is required")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	user, err := usersAPI.Get(ctx, notionapi.UserID(in.UserID))
	if err != nil {
		writeFailErr(w, "retrieve_user", err)
		return
	}
	writeOK(w, user)
}

func RetrieveBotUserHandler(w http.ResponseWriter, r *http.Request) {
	if usersAPI == nil {
		writeFail(w, "users api not configured")
		return
	}

	ctx, cancel := callCtx(r)
	defer cancel()

	user, err := usersAPI.Me(ctx)
	if err != nil {
		writeFailErr(w, "retrieve_bot_user", err)
		return
	}
	writeOK(w, user)
}
