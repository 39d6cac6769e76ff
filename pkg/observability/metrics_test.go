package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/dial/pkg/domain"
	"github.com/aretw0/dial/pkg/observability"
	"github.com/aretw0/dial/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	d, err := domain.NewDial(100, 50)
	require.NoError(t, err)

	r := runner.NewRunner(runner.WithLifecycleHooks(m.Hooks()))
	_, err = r.RunTokens(context.Background(), d, []string{"R50", "L305", "R5", "X1"})
	require.Error(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Commands.WithLabelValues("R")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Commands.WithLabelValues("L")))
	// R50 -> 0 (1), L305 from 0 -> 95 (3), R5 from 95 -> 0 (1)
	assert.Equal(t, float64(5), testutil.ToFloat64(m.Crossings))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ZeroLandings))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ParseErrors))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}
