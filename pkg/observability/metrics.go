package observability

import (
	"context"

	"github.com/aretw0/dial/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for dial simulations.
type Metrics struct {
	Commands     *prometheus.CounterVec
	Crossings    prometheus.Counter
	ZeroLandings prometheus.Counter
	ParseErrors  prometheus.Counter
	Magnitude    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Passing nil uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dial_commands_total",
				Help: "Total number of rotation commands applied",
			},
			[]string{"direction"},
		),
		Crossings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dial_zero_crossings_total",
			Help: "Total number of times the pointer visited zero",
		}),
		ZeroLandings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dial_zero_landings_total",
			Help: "Total number of commands that came to rest on zero",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dial_parse_errors_total",
			Help: "Total number of rejected command lines",
		}),
		Magnitude: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dial_command_magnitude",
			Help:    "Step count of applied commands",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		}),
	}

	for _, c := range []prometheus.Collector{m.Commands, m.Crossings, m.ZeroLandings, m.ParseErrors, m.Magnitude} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnApply: func(_ context.Context, e *domain.ApplyEvent) {
			m.Commands.WithLabelValues(e.Step.Command.Direction.String()).Inc()
			m.Crossings.Add(float64(e.Step.Crossings))
			m.Magnitude.Observe(float64(e.Step.Command.Magnitude))
			if e.Step.Landed() {
				m.ZeroLandings.Inc()
			}
		},
		OnParseError: func(context.Context, *domain.ParseErrorEvent) {
			m.ParseErrors.Inc()
		},
	}
}
