// internal/app/app.go
package app

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/L1xux/notion-agent/internal/agents"
	"github.com/L1xux/notion-agent/internal/config"
	hh "github.com/L1xux/notion-agent/internal/handlers/http"
	toolhandlers "github.com/L1xux/notion-agent/internal/handlers/tools"
	"github.com/L1xux/notion-agent/internal/llm"
	"github.com/L1xux/notion-agent/internal/notion"
	"github.com/L1xux/notion-agent/internal/tools"
	"github.com/L1xux/notion-agent/internal/util"
)

// App menampung router utama
type App struct {
	Router *mux.Router
	Cfg    *config.Config
}

// New membuat instance App + registrasi semua routes (HTTP & tools)
func New() *App {
	cfg := config.Load()
	r := mux.NewRouter()

	// === init Notion client ===
	if cfg.Notion.APIKey != "" {
		toolhandlers.SetAPI(notion.NewAPI(cfg.Notion.APIKey))
	} else {
		log.Printf("[WARN] NOTION_API_KEY empty; tool calls will fail until set")
	}

	// === registrasi semua tool ke registry ===
	toolhandlers.RegisterAll()

	// === LLM: planner router + pipeline compose (opsional) ===
	var composer *agents.Composer
	if client, err := llm.NewFromEnv(); err != nil {
		log.Printf("[WARN] init llm client: %v (planner & compose disabled)", err)
	} else {
		tools.SetPlanner(tools.NewRoutePlanner(client))
		composer = agents.NewComposer(client)
	}

	hh.SetReadyCheck(func() error {
		if cfg.Notion.APIKey == "" {
			return util.Internal("NOTION_API_KEY not set")
		}
		return nil
	})

	// ---- HTTP routes (UI/API biasa) ----
	RegisterRoutesWithDeps(r, RegisterDeps{Composer: composer})

	return &App{Router: r, Cfg: cfg}
}

// Run menjalankan server HTTP
func (a *App) Run(addr string) {
	log.Printf("server running on %s", addr)
	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
