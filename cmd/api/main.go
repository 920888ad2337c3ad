package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutricoach/backend/config"
	"github.com/nutricoach/backend/internal/api"
	"github.com/nutricoach/backend/internal/logger"
	"github.com/nutricoach/backend/internal/router"
	"github.com/nutricoach/backend/internal/server"
	"github.com/nutricoach/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := logger.New(string(cfg.Env))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer lg.Sync()

	// Absent credential is a supported mode: endpoints serve canned data.
	var ai service.AIClient
	if cfg.AIEnabled() {
		ai = service.NewOpenAIClient(cfg, lg)
	} else {
		lg.Warn("no OPENAI_API_KEY configured, running in fallback-only mode")
	}

	recipeHandler := api.NewRecipeHandler(ai, lg)
	coachHandler := api.NewCoachHandler(ai, lg)

	r := router.SetupRouter(cfg, lg, recipeHandler, coachHandler)
	srv := server.New(cfg, r, lg)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			lg.Fatal("server error", "error", err)
		}
	case sig := <-quit:
		lg.Info("received signal, shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Fatal("server shutdown error", "error", err)
	}
	lg.Info("server stopped")
}
