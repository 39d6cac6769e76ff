package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/dial/pkg/domain"
)

// TextHandler writes one human-readable line per step and a short summary.
type TextHandler struct {
	Writer io.Writer

	// Quiet suppresses per-step lines; only the summary is written.
	Quiet bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithQuiet suppresses per-step output.
func WithQuiet(quiet bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Quiet = quiet
	}
}

// NewTextHandler creates a handler writing to w (Stdout if nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Step(ctx context.Context, line int, step domain.Step) error {
	if h.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(h.Writer, "%-8s %4d -> %-4d crossings=%d\n",
		step.Command, step.From, step.Position, step.Crossings)
	return err
}

func (h *TextHandler) Summary(ctx context.Context, report *Report) error {
	_, err := fmt.Fprintf(h.Writer,
		"commands=%d landed_on_zero=%d zero_crossings=%d final_position=%d\n",
		report.Commands, report.ZeroLandings, report.Crossings, report.FinalPosition)
	return err
}
