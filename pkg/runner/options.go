package runner

import (
	"log/slog"

	"github.com/aretw0/dial/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHandler configures the output strategy.
func WithHandler(handler OutputHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}
