package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/dial/internal/config"
	"github.com/aretw0/dial/internal/logging"
	"github.com/aretw0/dial/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// loadConfig reads the config file (or the default one in the working directory)
// and applies flag overrides on top.
func loadConfig(path string, overrides map[string]any) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault(".")
	}
	if err != nil {
		return config.Config{}, err
	}

	if len(overrides) > 0 {
		if err := cfg.Override(overrides); err != nil {
			return config.Config{}, fmt.Errorf("invalid flags: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// createLogger configures the application logger.
// It writes to w (normally Stderr) to stay out of the report stream.
func createLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnApply: func(ctx context.Context, e *domain.ApplyEvent) {
			logger.Debug("Apply", "line", e.Line, "command", e.Step.Command.String(), "crossings", e.Step.Crossings)
		},
		OnParseError: func(ctx context.Context, e *domain.ParseErrorEvent) {
			logger.Debug("Parse Error", "line", e.Line, "token", e.Token, "err", e.Err)
		},
	}
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open commands: %w", err)
	}
	return f, nil
}

func handleExecutionError(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil // Exit 0 for interruptions
	}
	return err
}
