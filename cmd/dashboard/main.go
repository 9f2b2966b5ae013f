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

	"interndash/internal/cache"
	"interndash/internal/config"
	"interndash/internal/dashboard"
	"interndash/internal/logging"
	"interndash/internal/pipeline"
	sheetsconnector "interndash/internal/source/sheets"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	connector, err := sheetsconnector.NewConnector(ctx, cfg)
	must(err)

	gridCache := cache.New(time.Duration(cfg.CacheTTLSec) * time.Second)
	svc := pipeline.NewService(connector, gridCache, cfg.SourceKey(), log)
	server := dashboard.NewServer(svc, log)

	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: server.Handler()}

	go func() {
		log.Info("dashboard listening", "addr", cfg.HTTPAddr, "sheet", cfg.SourceKey())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown incomplete", "err", err)
	}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
