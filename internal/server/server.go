package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutricoach/backend/config"
	"github.com/nutricoach/backend/internal/logger"
)

// Server represents the HTTP server
type Server struct {
	http *http.Server
	log  *logger.Logger
}

// New creates a new server instance
func New(cfg *config.Config, router *gin.Engine, log *logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: router,
		},
		log: log,
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
