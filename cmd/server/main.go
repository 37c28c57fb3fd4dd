package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bako110/pausemanager/internal/config"
	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/monitor"
	"github.com/bako110/pausemanager/internal/server"
	"github.com/bako110/pausemanager/internal/session"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/ws"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	sessions, err := session.Open(cfg.SessionDB)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	gw := gateway.New(gateway.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Token:   sessions.Token,
	})

	hub := ws.NewHub()
	go hub.Run()

	mon := monitor.New(gw, hub)
	if err := mon.Start(); err != nil {
		log.Fatalf("Failed to start gateway monitor: %v", err)
	}

	handler := server.New(server.Deps{
		Gateway:  gw,
		Sessions: sessions,
		Monitor:  mon,
		Hub:      hub,
		Clients:  store.NewClientStore(gw),
		Services: store.NewServiceStore(gw),
		Events:   store.NewEventStore(gw),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s (env=%s, api=%s)", cfg.Port, cfg.Env, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	mon.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
