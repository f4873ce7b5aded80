// Package main runs the todo API server.
//
// Configuration comes from an optional YAML file (-config or TODO_CONFIG)
// overridden by environment variables:
//   - TODO_ADDR: listen address (default ":8080")
//   - TODO_LOG_LEVEL: debug, info, warn or error (default "info")
//   - TODO_LOG_FORMAT: text or json (default "text")
//
// Example usage:
//
//	TODO_ADDR=:8080 ./todoapi
//
//	curl -X POST localhost:8080/todos \
//	  -H 'Content-Type: application/json' \
//	  -d '{"title":"A","description":"B"}'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dreamware/todo/internal/api"
	"github.com/dreamware/todo/internal/config"
	"github.com/dreamware/todo/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run serves until ctx is canceled, then shuts down gracefully.
func run(ctx context.Context, args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("todoapi", flag.ContinueOnError)
	fs.SetOutput(logOut)
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger(logOut)

	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return serve(ctx, ln, srv, cfg, logger)
}

// newServer builds the store, applies the configured seed todos and wraps
// both in the HTTP adapter.
func newServer(cfg config.Config, logger *slog.Logger) (*api.Server, error) {
	store := storage.NewMemoryStore(storage.WithLogger(logger))
	for i, s := range cfg.Seed {
		if _, err := store.Create(s.Title, s.Description, s.Completed); err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
	}
	if n := len(cfg.Seed); n > 0 {
		logger.Info("seeded todos", "count", n)
	}

	return api.NewServer(store, api.ServerOptions{
		Logger:       logger,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}), nil
}

func serve(ctx context.Context, ln net.Listener, h http.Handler, cfg config.Config, logger *slog.Logger) error {
	httpSrv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("todo api listening", "addr", ln.Addr().String())
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("todo api stopped")
	return nil
}
