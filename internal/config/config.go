// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	ToolsPort string
	LogLevel  string
	LogFormat string

	Notion struct {
		APIKey string
	}

	LLM struct {
		Provider string // default: openai
		APIKey   string
		APIBase  string
		Model    string
	}

	Plan struct {
		MaxRoutes int
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "notion-agent")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.ToolsPort = getEnv("TOOLS_PORT", "8090")
	c.LogLevel = getEnv("LOG_LEVEL", "debug")
	c.LogFormat = getEnv("LOG_FORMAT", "json")

	c.Notion.APIKey = getEnv("NOTION_API_KEY", "")

	// LLM / OpenAI
	c.LLM.Provider = getEnv("LLM_PROVIDER", "openai")
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	c.LLM.APIBase = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	c.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	c.Plan.MaxRoutes = getEnvInt("PLAN_MAX_ROUTES", 8)

	if c.Notion.APIKey == "" {
		log.Println("[WARN] NOTION_API_KEY is not set, Notion tools will fail")
	}
	if c.LLM.APIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, LLM features may not work")
	}

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}
