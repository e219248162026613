// Package observe bridges scope lifecycle events to operational tooling:
// prometheus counters for minted errors and unexpected diagnostics, and
// structured log output for failure reports. The core package stays free of
// logging and metrics policy; this package attaches it from the outside via
// scope hooks.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors the sink feeds. One instance per process is
// typical; tests construct their own to keep counts isolated.
type Metrics struct {
	// MintedTotal counts identifiers minted across instrumented scopes.
	MintedTotal prometheus.Counter

	// UnexpectedTotal counts unexpected diagnostics, labeled by the payload's
	// type name.
	UnexpectedTotal *prometheus.CounterVec
}

// NewMetrics builds the collectors under the given namespace. Call Register
// to expose them.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		MintedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "errors",
			Name:      "minted_total",
			Help:      "Number of error identifiers minted",
		}),
		UnexpectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "errors",
			Name:      "unexpected_total",
			Help:      "Number of unexpected diagnostics by payload type",
		}, []string{"type"}),
	}
}

// Register registers every collector with reg. Call once during startup:
//
//	m := observe.NewMetrics("xgxdiag")
//	m.Register(prometheus.DefaultRegisterer)
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.MintedTotal, m.UnexpectedTotal)
}
