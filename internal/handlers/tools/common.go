// internal/handlers/tools/common.go
// Helper bersama untuk seluruh handler tool Notion.

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/L1xux/notion-agent/internal/notion"
	"github.com/L1xux/notion-agent/internal/tools"
)

// inject dari app
var (
	searchAPI    notion.SearchAPI
	pagesAPI     notion.PagesAPI
	blocksAPI    notion.BlocksAPI
	databasesAPI notion.DatabasesAPI
	commentsAPI  notion.CommentsAPI
	usersAPI     notion.UsersAPI
)

func SetSearchAPI(a notion.SearchAPI)       { searchAPI = a }
func SetPagesAPI(a notion.PagesAPI)         { pagesAPI = a }
func SetBlocksAPI(a notion.BlocksAPI)       { blocksAPI = a }
func SetDatabasesAPI(a notion.DatabasesAPI) { databasesAPI = a }
func SetCommentsAPI(a notion.CommentsAPI)   { commentsAPI = a }
func SetUsersAPI(a notion.UsersAPI)         { usersAPI = a }

// SetAPI menyambungkan seluruh surface sekaligus.
func SetAPI(api *notion.API) {
	SetSearchAPI(api.Search)
	SetPagesAPI(api.Pages)
	SetBlocksAPI(api.Blocks)
	SetDatabasesAPI(api.Databases)
	SetCommentsAPI(api.Comments)
	SetUsersAPI(api.Users)
}

// callTimeout membatasi satu round trip SDK. Tidak ada retry di layer ini.
const callTimeout = 10 * time.Second

func callCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), callTimeout)
}

// decodeParams membaca JSON body ke struct params tool.
// Body kosong dibiarkan lolos (params opsional semua).
func decodeParams(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// writeOK / writeFail: semua handler keluar lewat envelope, tidak ada error
// yang lolos melewati boundary facade.
func writeOK(w http.ResponseWriter, data any) {
	tools.WriteJSON(w, tools.OK(data))
}

func writeFail(w http.ResponseWriter, msg string) {
	tools.WriteJSON(w, tools.Fail(msg))
}

func writeFailErr(w http.ResponseWriter, op string, err error) {
	tools.WriteJSON(w, tools.Fail(op+": "+err.Error()))
}
