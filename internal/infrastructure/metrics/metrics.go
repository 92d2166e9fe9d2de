package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "assistant"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the client's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Registry       *prometheus.Registry
	APIRequests    *prometheus.CounterVec
	CacheFallbacks *prometheus.CounterVec
	ClientRebuilds prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		APIRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total API requests by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		CacheFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_fallbacks_total",
				Help:      "Failed fetches answered from the local cache.",
			},
			[]string{"resource"},
		),
		ClientRebuilds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_rebuilds_total",
				Help:      "Times the shared HTTP client was built.",
			},
		),
	}
	m.Registry.MustRegister(m.APIRequests, m.CacheFallbacks, m.ClientRebuilds)
	return m
}

func (m *Metrics) ObserveRequest(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.APIRequests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveFallback(resource string) {
	if m == nil {
		return
	}
	m.CacheFallbacks.WithLabelValues(resource).Inc()
}

func (m *Metrics) ObserveRebuild() {
	if m == nil {
		return
	}
	m.ClientRebuilds.Inc()
}
