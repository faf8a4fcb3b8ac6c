package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cast-match/internal/app"
	"cast-match/internal/config"
	"cast-match/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	container, err := app.NewContainer(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to build container", zap.Error(err))
	}

	bootstrap, cleanup, err := app.Bootstrap(container)
	if err != nil {
		zlog.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			zlog.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zlog.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	zlog.Info("server listening", zap.String("addr", addr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			zlog.Warn("shutdown error", zap.Error(err))
		}
	}
}
