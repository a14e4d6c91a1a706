// Package server exposes the plan evaluator over HTTP using gin.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server wraps a gin engine and the http.Server serving it.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	log    *slog.Logger
}

// Options configures the server's listen address.
type Options struct {
	Host string
	Port int
	Seed int64
}

// New builds a Server with routes registered and gin in release mode unless
// LOG_LEVEL=debug.
func New(opts Options, log *slog.Logger) *Server {
	if log.Enabled(context.Background(), slog.LevelDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	RegisterRoutes(engine, opts.Seed, log)

	addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)
	return &Server{
		engine: engine,
		log:    log,
		http: &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Run starts serving until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
