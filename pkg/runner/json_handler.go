package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/dial/pkg/domain"
)

// JSONHandler emits NDJSON: one object per step followed by a summary object.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

type stepLine struct {
	Type string `json:"type"`
	Line int    `json:"line"`
	domain.Step
}

type summaryLine struct {
	Type string `json:"type"`
	*Report
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Step(ctx context.Context, line int, step domain.Step) error {
	return h.Encoder.Encode(stepLine{Type: "step", Line: line, Step: step})
}

func (h *JSONHandler) Summary(ctx context.Context, report *Report) error {
	return h.Encoder.Encode(summaryLine{Type: "summary", Report: report})
}
