package dial

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/dial/pkg/domain"
	"github.com/aretw0/dial/pkg/runner"
)

const (
	// DefaultPerimeter is the number of positions on a dial when none is configured.
	DefaultPerimeter = 100
	// DefaultStart is the initial pointer position when none is configured.
	DefaultStart = 50
)

// Engine is the high-level entry point for the dial library.
// It holds the dial configuration and hands every simulation a fresh dial.
type Engine struct {
	perimeter int
	start     int
	hooks     domain.LifecycleHooks
	handler   runner.OutputHandler
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithPerimeter sets the number of positions on the dial.
func WithPerimeter(perimeter int) Option {
	return func(e *Engine) {
		e.perimeter = perimeter
	}
}

// WithStart sets the initial pointer position.
func WithStart(start int) Option {
	return func(e *Engine) {
		e.start = start
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithHandler sets the output strategy used during simulations.
func WithHandler(h runner.OutputHandler) Option {
	return func(e *Engine) {
		e.handler = h
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine. The dial configuration is validated eagerly.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		perimeter: DefaultPerimeter,
		start:     DefaultStart,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if _, err := eng.NewDial(); err != nil {
		return nil, err
	}
	return eng, nil
}

// NewDial returns a fresh, independently owned dial at the configured start.
func (e *Engine) NewDial() (*domain.Dial, error) {
	return domain.NewDial(e.perimeter, e.start)
}

// Perimeter returns the configured perimeter.
func (e *Engine) Perimeter() int {
	return e.perimeter
}

// Start returns the configured starting position.
func (e *Engine) Start() int {
	return e.start
}

// Simulate reads one command per line from src and applies them to a new dial.
func (e *Engine) Simulate(ctx context.Context, src io.Reader) (*runner.Report, error) {
	d, err := e.NewDial()
	if err != nil {
		return nil, err
	}
	return e.runner().Run(ctx, d, src)
}

// SimulateTokens applies already-split tokens to a new dial.
func (e *Engine) SimulateTokens(ctx context.Context, tokens []string) (*runner.Report, error) {
	d, err := e.NewDial()
	if err != nil {
		return nil, err
	}
	return e.runner().RunTokens(ctx, d, tokens)
}

func (e *Engine) runner() *runner.Runner {
	return runner.NewRunner(
		runner.WithLogger(e.logger.With("perimeter", e.perimeter)),
		runner.WithHandler(e.handler),
		runner.WithLifecycleHooks(e.hooks),
	)
}
