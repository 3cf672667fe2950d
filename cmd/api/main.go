// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/L1xux/notion-agent/internal/app"
	"github.com/L1xux/notion-agent/internal/middleware"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	a := app.New() // <-- inisialisasi + inject Notion client, registry, planner
	a.Router.Use(middleware.CORS)
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.Auth)

	addr := ":" + a.Cfg.AppPort

	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // compose pipeline bisa lama
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("API %s running on %s", BuildVersion, addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
