package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{
		OnApply: func(context.Context, *ApplyEvent) { calls = append(calls, "a") },
	}
	b := LifecycleHooks{
		OnApply:      func(context.Context, *ApplyEvent) { calls = append(calls, "b") },
		OnParseError: func(context.Context, *ParseErrorEvent) { calls = append(calls, "b-err") },
	}

	merged := a.Merge(b)
	merged.OnApply(context.Background(), &ApplyEvent{})
	merged.OnParseError(context.Background(), &ParseErrorEvent{})

	assert.Equal(t, []string{"a", "b", "b-err"}, calls)
}
