package runner

import (
	"context"

	"github.com/aretw0/dial/pkg/domain"
)

// OutputHandler defines how the runner presents its progress.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type OutputHandler interface {
	// Step presents the outcome of a single command.
	Step(ctx context.Context, line int, step domain.Step) error

	// Summary presents the aggregated report once all commands are applied.
	Summary(ctx context.Context, report *Report) error
}
