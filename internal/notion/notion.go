// internal/notion/notion.go
// Adapter tipis di atas vendor SDK (jomei/notionapi).
// Interface di sini sengaja sempit: hanya operasi yang dipakai handler tool,
// supaya gampang di-inject dan di-fake saat testing (pola repo injection).

package notion

import (
	"context"

	"github.com/jomei/notionapi"
)

type SearchAPI interface {
	Do(ctx context.Context, request *notionapi.SearchRequest) (*notionapi.SearchResponse, error)
}

type PagesAPI interface {
	Get(ctx context.Context, id notionapi.PageID) (*notionapi.Page, error)
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
	Update(ctx context.Context, id notionapi.PageID, request *notionapi.PageUpdateRequest) (*notionapi.Page, error)
}

type BlocksAPI interface {
	AppendChildren(ctx context.Context, id notionapi.BlockID, requestBody *notionapi.AppendBlockChildrenRequest) (*notionapi.AppendBlockChildrenResponse, error)
	Get(ctx context.Context, id notionapi.BlockID) (notionapi.Block, error)
	GetChildren(ctx context.Context, id notionapi.BlockID, pagination *notionapi.Pagination) (*notionapi.GetChildrenResponse, error)
	Delete(ctx context.Context, id notionapi.BlockID) (notionapi.Block, error)
}

type DatabasesAPI interface {
	Get(ctx context.Context, id notionapi.DatabaseID) (*notionapi.Database, error)
	Query(ctx context.Context, id notionapi.DatabaseID, requestBody *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}

type CommentsAPI interface {
	Create(ctx context.Context, requestBody *notionapi.CommentCreateRequest) (*notionapi.Comment, error)
	Get(ctx context.Context, id notionapi.BlockID, pagination *notionapi.Pagination) (*notionapi.CommentQueryResponse, error)
}

type UsersAPI interface {
	List(ctx context.Context, pagination *notionapi.Pagination) (*notionapi.UsersListResponse, error)
	Get(ctx context.Context, id notionapi.UserID) (*notionapi.User, error)
	Me(ctx context.Context) (*notionapi.User, error)
}

// API membungkus seluruh surface SDK yang dipakai aplikasi.
type API struct {
	Search    SearchAPI
	Pages     PagesAPI
	Blocks    BlocksAPI
	Databases DatabasesAPI
	Comments  CommentsAPI
	Users     UsersAPI
}

// NewAPI membuat API dari satu kredensial integration token.
// Auth, rate limit, dan pagination low-level semuanya urusan SDK.
func NewAPI(token string) *API {
	c := notionapi.NewClient(notionapi.Token(token))
	return &API{
		Search:    c.Search,
		Pages:     c.Page,
		Blocks:    c.Block,
		Databases: c.Database,
		Comments:  c.Comment,
		Users:     c.User,
	}
}
