package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chiTransport "github.com/shoplens/shoplens/internal/transport/chi"
	"github.com/shoplens/shoplens/internal/version"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(a)
		},
	}
}

func runServe(a *app) error {
	a.logger.Info("starting shoplens API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.Int("http_port", a.cfg.HTTP.Port),
		zap.Strings("redis_addrs", a.cfg.Redis.Addrs),
		zap.String("index", a.cfg.Index.Name),
		zap.String("model", a.cfg.LLM.Model),
	)

	if err := a.connect(); err != nil {
		return err
	}

	svc, llm := a.newPipeline()

	health := &healthChecker{catalog: a.catalog, llm: llm}
	server := chiTransport.NewServer(svc, health, a.logger)

	addr := fmt.Sprintf(":%d", a.cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(a.cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		a.logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("error during shutdown", zap.Error(err))
	}

	a.logger.Info("server stopped gracefully")
	return nil
}

// healthChecker reports healthy only when both the search engine and the LLM
// API respond.
type healthChecker struct {
	catalog interface {
		Ping(ctx context.Context) error
	}
	llm interface {
		HealthCheck(ctx context.Context) error
	}
}

func (h *healthChecker) Ping(ctx context.Context) error {
	if err := h.catalog.Ping(ctx); err != nil {
		return fmt.Errorf("search engine: %w", err)
	}
	if err := h.llm.HealthCheck(ctx); err != nil {
		return fmt.Errorf("llm API: %w", err)
	}
	return nil
}
