package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventApply      EventType = "apply"
	EventParseError EventType = "parse_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ApplyEvent is emitted after a command has been applied to a dial.
type ApplyEvent struct {
	EventBase
	Line int  `json:"line"`
	Step Step `json:"step"`
}

// ParseErrorEvent is emitted when an input line cannot be parsed.
type ParseErrorEvent struct {
	EventBase
	Line  int    `json:"line"`
	Token string `json:"token"`
	Err   error  `json:"-"`
}

// LifecycleHooks defines callbacks for simulation observability.
type LifecycleHooks struct {
	OnApply      func(context.Context, *ApplyEvent)
	OnParseError func(context.Context, *ParseErrorEvent)
}

// Merge returns hooks that invoke h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnApply: func(ctx context.Context, e *ApplyEvent) {
			if h.OnApply != nil {
				h.OnApply(ctx, e)
			}
			if other.OnApply != nil {
				other.OnApply(ctx, e)
			}
		},
		OnParseError: func(ctx context.Context, e *ParseErrorEvent) {
			if h.OnParseError != nil {
				h.OnParseError(ctx, e)
			}
			if other.OnParseError != nil {
				other.OnParseError(ctx, e)
			}
		},
	}
}
