// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/cliparse"
	"github.com/danielhkuo/makeurownmenu/router"
	"github.com/danielhkuo/makeurownmenu/store"
)

// shutdownTimeout bounds how long in-flight requests get to finish
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// run starts the server and blocks until it has shut down. Deferred cleanup
// (store close, Sentry flush) always runs before it returns.
func run(args []string) error {
	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	// Error reporting is a no-op without a DSN
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.AppEnv,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	defer sentry.Flush(2 * time.Second)

	menu, err := catalog.Load()
	if err != nil {
		sentry.CaptureException(err)
		return fmt.Errorf("menu catalog invalid: %w", err)
	}

	// Connect to the configured backend; SQL backends create their schema here
	st, err := store.Open(context.Background(), cfg)
	if err != nil {
		sentry.CaptureException(err)
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()
	slog.Info("Store ready", "type", cfg.DatabaseType)

	// Create server
	server := &http.Server{
		Handler: router.NewRouter(st, menu, cfg),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		sentry.CaptureException(err)
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)

	slog.Info("Listening", "port", cfg.Port)
	return serve(server, ln, ctrlc, shutdownTimeout)
}

// serve runs server on ln until stop fires, then waits for in-flight
// requests to finish (up to timeout) before returning
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		// Failed without a shutdown request; nothing to drain
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Close()
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	slog.Info("Server closed")
	return nil
}
