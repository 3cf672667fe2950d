// cmd/tool-router/main.go
package main

import (
	"log"
	"net/http"

	"github.com/L1xux/notion-agent/internal/config"
	toolhandlers "github.com/L1xux/notion-agent/internal/handlers/tools"
	"github.com/L1xux/notion-agent/internal/llm"
	"github.com/L1xux/notion-agent/internal/notion"
	"github.com/L1xux/notion-agent/internal/server"
	"github.com/L1xux/notion-agent/internal/tools"
)

func main() {
	cfg := config.Load()

	if cfg.Notion.APIKey != "" {
		toolhandlers.SetAPI(notion.NewAPI(cfg.Notion.APIKey))
	}
	toolhandlers.RegisterAll()

	if client, err := llm.NewFromEnv(); err != nil {
		log.Printf("[WARN] init llm client: %v (planner disabled)", err)
	} else {
		tools.SetPlanner(tools.NewRoutePlanner(client))
	}

	port := cfg.ToolsPort
	log.Printf("Tool router listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, server.NewMux()))
}
