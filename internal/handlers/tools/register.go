// internal/handlers/tools/register.go
// Pendaftaran seluruh tool ke registry. Nama di sini harus sinkron
// dengan katalog notion-tools.json; ada test yang menjaga itu.

package tools

import (
	"net/http"

	toolreg "github.com/L1xux/notion-agent/internal/tools"
)

// Handlers memetakan nama tool ke handler-nya.
func Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		// search
		"search":       SearchHandler,
		"search_pages": SearchPagesHandler,

		// pages
		"retrieve_page": RetrievePageHandler,
		"create_page":   CreatePageHandler,
		"update_page":   UpdatePageHandler,
		"archive_page":  ArchivePageHandler,
		"restore_page":  RestorePageHandler,

		// blocks: append
		"append_heading":            AppendHeadingHandler,
		"append_paragraph":          AppendParagraphHandler,
		"append_callout":            AppendCalloutHandler,
		"append_quote":              AppendQuoteHandler,
		"append_divider":            AppendDividerHandler,
		"append_toggle":             AppendToggleHandler,
		"append_code":               AppendCodeHandler,
		"append_todo":               AppendTodoHandler,
		"append_bulleted_list_item": AppendBulletedListItemHandler,
		"append_numbered_list_item": AppendNumberedListItemHandler,
		"append_table_of_contents":  AppendTableOfContentsHandler,
		"append_breadcrumb":         AppendBreadcrumbHandler,
		"append_equation":           AppendEquationHandler,
		"append_table":              AppendTableHandler,
		"append_image":              AppendImageHandler,
		"append_video":              AppendVideoHandler,
		"append_embed":              AppendEmbedHandler,
		"append_link":               AppendLinkHandler,
		"append_bookmark":           AppendBookmarkHandler,
		"append_blocks":             AppendBlocksHandler,

		// blocks: read/delete
		"retrieve_block":          RetrieveBlockHandler,
		"retrieve_block_children": RetrieveBlockChildrenHandler,
		"delete_block":            DeleteBlockHandler,

		// databases
		"retrieve_database":     RetrieveDatabaseHandler,
		"query_database":        QueryDatabaseHandler,
		"create_database_entry": CreateDatabaseEntryHandler,

		// comments
		"create_comment": CreateCommentHandler,
		"list_comments":  ListCommentsHandler,

		// users
		"list_users":        ListUsersHandler,
		"retrieve_user":     RetrieveUserHandler,
		"retrieve_bot_user": RetrieveBotUserHandler,

		// files
		"encode_file":       EncodeFileHandler,
		"append_file_block": AppendFileBlockHandler,
	}
}

// RegisterAll mendaftarkan semua tool ke registry global.
func RegisterAll() {
	for name, fn := range Handlers() {
		toolreg.RegisterFunc(name, fn)
	}
}
