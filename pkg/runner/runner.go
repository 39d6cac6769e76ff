package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/dial/pkg/domain"
)

// Runner feeds commands into a dial in input order and aggregates the results.
// A Runner holds no per-run state and may be reused; the Dial it is given may not.
type Runner struct {
	// Handler presents steps and the summary. If nil, nothing is written.
	Handler OutputHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks receive apply and parse-error events.
	Hooks domain.LifecycleHooks
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run reads one command token per line from src and applies each to d.
// Blank lines are skipped. The first malformed line aborts the run with a
// *LineError; the partial report up to that line is still returned.
func (r *Runner) Run(ctx context.Context, d *domain.Dial, src io.Reader) (*Report, error) {
	report := NewReport(d)
	scanner := NewLineScanner(src)

	line := 0
	for scanner.Scan() {
		line++
		if err := r.process(ctx, d, report, line, scanner.Text()); err != nil {
			return report, err
		}
	}
	if err := scanner.Err(); err != nil {
		err = ScanError(line+1, err)
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			r.parseFailed(ctx, lineErr.Line, "", lineErr.Err)
		}
		return report, err
	}

	return report, r.finish(ctx, report)
}

// RunTokens applies an in-memory list of tokens; token i is reported as line i+1.
func (r *Runner) RunTokens(ctx context.Context, d *domain.Dial, tokens []string) (*Report, error) {
	report := NewReport(d)
	for i, token := range tokens {
		if err := r.process(ctx, d, report, i+1, token); err != nil {
			return report, err
		}
	}
	return report, r.finish(ctx, report)
}

func (r *Runner) process(ctx context.Context, d *domain.Dial, report *Report, line int, raw string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	token, err := SanitizeLine(raw)
	if err != nil {
		r.parseFailed(ctx, line, raw, err)
		return &LineError{Line: line, Token: raw, Err: err}
	}
	if token == "" {
		return nil
	}

	cmd, err := domain.ParseCommand(token)
	if err != nil {
		r.parseFailed(ctx, line, token, err)
		return &LineError{Line: line, Token: token, Err: err}
	}

	step := d.Apply(cmd)
	report.Record(step)

	r.Logger.Debug("command applied",
		"line", line,
		"command", cmd.String(),
		"from", step.From,
		"position", step.Position,
		"crossings", step.Crossings,
	)
	if r.Hooks.OnApply != nil {
		r.Hooks.OnApply(ctx, &domain.ApplyEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventApply},
			Line:      line,
			Step:      step,
		})
	}

	if r.Handler != nil {
		if err := r.Handler.Step(ctx, line, step); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}

func (r *Runner) parseFailed(ctx context.Context, line int, token string, err error) {
	r.Logger.Warn("rejected command", "line", line, "token", token, "error", err)
	if r.Hooks.OnParseError != nil {
		r.Hooks.OnParseError(ctx, &domain.ParseErrorEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventParseError},
			Line:      line,
			Token:     token,
			Err:       err,
		})
	}
}

func (r *Runner) finish(ctx context.Context, report *Report) error {
	r.Logger.Info("simulation finished",
		"commands", report.Commands,
		"zero_landings", report.ZeroLandings,
		"crossings", report.Crossings,
		"final_position", report.FinalPosition,
	)
	if r.Handler == nil {
		return nil
	}
	if err := r.Handler.Summary(ctx, report); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}
