// Package main wires the HTTP server for the team, project and task service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"og-team-ms/config"
	"og-team-ms/internal/repository"
	"og-team-ms/internal/transport/http/middleware"
	"og-team-ms/internal/transport/http/server/handlers-fiber"
	"og-team-ms/internal/usecase"
	"og-team-ms/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log.Named("usecase"), repo, cfg.HTTP.RequestTimeout)

	serv := fiber.New(handlers_fiber.AppConfig(cfg.HTTP.RequestTimeout))
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log.Named("http")))

	if cfg.Metrics.Enabled {
		serv.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Handler())
		serv.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log.Named("handler"), uc)
	h.Register(serv.Group("/api/v1"))

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		log.Infow("server stopped")
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
