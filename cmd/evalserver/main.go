// Plan Evaluator Server - deterministic evaluation over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arcwell-robotics/planeval/internal/config"
	"github.com/arcwell-robotics/planeval/internal/logger"
	"github.com/arcwell-robotics/planeval/pkg/server"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Logging)

	log.Info("starting plan evaluator server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"seed", cfg.Seed,
	)

	srv := server.New(server.Options{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
		Seed: cfg.Seed,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
