package dial_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/dial"
	"github.com/aretw0/dial/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	eng, err := dial.New()
	require.NoError(t, err)
	assert.Equal(t, dial.DefaultPerimeter, eng.Perimeter())
	assert.Equal(t, dial.DefaultStart, eng.Start())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := dial.New(dial.WithPerimeter(0))
	assert.ErrorIs(t, err, domain.ErrInvalidPerimeter)

	_, err = dial.New(dial.WithPerimeter(10), dial.WithStart(10))
	assert.ErrorIs(t, err, domain.ErrInvalidStart)
}

func TestEngine_Simulate(t *testing.T) {
	eng, err := dial.New()
	require.NoError(t, err)

	report, err := eng.Simulate(context.Background(), strings.NewReader("L68\nL30\nR48\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Commands)
	assert.Equal(t, 1, report.ZeroLandings)
	assert.Equal(t, 2, report.Crossings)
	assert.Equal(t, 0, report.FinalPosition)
}

func TestEngine_SimulationsAreIsolated(t *testing.T) {
	eng, err := dial.New(dial.WithPerimeter(10), dial.WithStart(0))
	require.NoError(t, err)

	first, err := eng.SimulateTokens(context.Background(), []string{"R3"})
	require.NoError(t, err)
	second, err := eng.SimulateTokens(context.Background(), []string{"R3"})
	require.NoError(t, err)

	assert.Equal(t, 3, first.FinalPosition)
	assert.Equal(t, 3, second.FinalPosition)
	assert.Equal(t, 0, second.Start)
}

func TestEngine_Hooks(t *testing.T) {
	var steps []domain.Step
	eng, err := dial.New(dial.WithLifecycleHooks(domain.LifecycleHooks{
		OnApply: func(_ context.Context, e *domain.ApplyEvent) {
			steps = append(steps, e.Step)
		},
	}))
	require.NoError(t, err)

	_, err = eng.SimulateTokens(context.Background(), []string{"R50", "R150"})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[1].From)
	assert.Equal(t, 50, steps[1].Position)
}
