package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marnixbouhuis/httplog"
	"github.com/marnixbouhuis/httplog/internal/config"
	"github.com/marnixbouhuis/httplog/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := httplog.New(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	// Libraries logging through zap.L() or the log package end up in the same sink.
	undoGlobals := zap.ReplaceGlobals(logger.Zap())
	defer undoGlobals()
	undoStdLog := zap.RedirectStdLog(logger.Zap().Named("Log"))
	defer undoStdLog()

	bootstrap := logger.WithLabel("Bootstrap")
	for env, reason := range cfg.Ignored {
		bootstrap.Warn(fmt.Sprintf("Ignoring %s: %v", env, reason))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg.Addr(), logger)
	if err != nil {
		bootstrap.Error(fmt.Sprintf("Failed to create server: %v", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		bootstrap.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			bootstrap.Error(fmt.Sprintf("Error during shutdown: %v", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			bootstrap.Error(fmt.Sprintf("Failed to start server: %v", err))
			_ = logger.Sync()
			os.Exit(1)
		}
	}
}
