package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	httpAdapter "github.com/aretw0/dial/internal/adapters/http"
	mcpAdapter "github.com/aretw0/dial/internal/adapters/mcp"
	"github.com/aretw0/dial/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// ShutdownTimeout is how long in-flight requests get after a shutdown signal.
const ShutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	ConfigPath string
	Overrides  map[string]any
	Addr       string
	Debug      bool
	Stderr     io.Writer
}

// NewServerHandler builds the HTTP handler with metrics registered on reg.
func NewServerHandler(opts ServeOptions, reg *prometheus.Registry) (http.Handler, error) {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}
	logger, err := createLogger(opts.Stderr, cfg.LogLevel, opts.Debug)
	if err != nil {
		return nil, err
	}

	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	return httpAdapter.NewHandler(
		httpAdapter.WithDefaults(cfg.Perimeter, cfg.Start),
		httpAdapter.WithLogger(logger),
		httpAdapter.WithLifecycleHooks(hooks),
		httpAdapter.WithGatherer(reg),
	), nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	handler, err := NewServerHandler(opts, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    opts.Addr,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(opts.Stderr, "Starting dial server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if cerr := srv.Close(); cerr != nil {
				return fmt.Errorf("error killing server: %w", cerr)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", ShutdownTimeout, err)
		}
		fmt.Fprintln(opts.Stderr, "Dial server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP server on Stdin/Stdout.
func ServeMCP(configPath string, overrides map[string]any, debug bool) error {
	s, err := NewMCPServer(configPath, overrides, debug, os.Stderr, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	return s.ServeStdio()
}

// NewMCPServer builds the MCP server with metrics registered on reg and, in
// debug mode, hooks that log every event.
func NewMCPServer(configPath string, overrides map[string]any, debug bool, stderr io.Writer, reg prometheus.Registerer) (*mcpAdapter.Server, error) {
	cfg, err := loadConfig(configPath, overrides)
	if err != nil {
		return nil, err
	}
	logger, err := createLogger(stderr, cfg.LogLevel, debug)
	if err != nil {
		return nil, err
	}

	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	hooks := metrics.Hooks()
	if debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	return mcpAdapter.NewServer(cfg.Perimeter, cfg.Start, logger, mcpAdapter.WithLifecycleHooks(hooks)), nil
}
