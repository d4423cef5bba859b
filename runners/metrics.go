package runners

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/reusee/turing/machines"
)

// Registry collects run metrics. Each scope owns its registry.
type Registry = *prometheus.Registry

func (Module) Registry() Registry {
	return prometheus.NewRegistry()
}

type Metrics struct {
	runs       *prometheus.CounterVec
	errors     prometheus.Counter
	iterations prometheus.Histogram
}

func (Module) Metrics(
	registry Registry,
) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{

		// labels: status
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tm",
			Name:      "runs_total",
			Help:      "Completed machine runs by status",
		}, []string{"status"}),

		errors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tm",
			Name:      "run_errors_total",
			Help:      "Runs aborted by invalid descriptions or missing rules",
		}),

		iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tm",
			Name:      "run_iterations",
			Help:      "Transitions applied per run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func (m *Metrics) observe(result machines.Result) {
	m.runs.WithLabelValues(string(result.Status)).Inc()
	m.iterations.Observe(float64(result.Iterations))
}
