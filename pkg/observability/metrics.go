// Package observability provides Prometheus metrics for environment variable
// resolution. Metrics are purely observational: the resolver behaves identically
// with or without them.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Resolution source labels, matching the resolver's source names.
const (
	SourceEnvironment = "environment"
	SourceFile        = "file"
	SourceDefault     = "default"
	SourceNone        = "none"
)

// Failure reason labels.
const (
	ReasonFileRead   = "file_read"
	ReasonValidation = "validation"
)

// Metrics holds all Prometheus metrics for variable resolution.
type Metrics struct {
	// ResolutionsTotal counts successful resolutions by source.
	ResolutionsTotal *prometheus.CounterVec
	// FailuresTotal counts failed resolutions by reason.
	FailuresTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all resolution metrics against the given
// registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "envinit_resolutions_total",
				Help: "Total number of successful variable resolutions by source",
			},
			[]string{"source"},
		),
		FailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "envinit_failures_total",
				Help: "Total number of failed variable resolutions by reason",
			},
			[]string{"reason"},
		),
	}

	registry.MustRegister(
		m.ResolutionsTotal,
		m.FailuresTotal,
	)

	return m
}

// ObserveResolution records a successful resolution from the given source.
// Safe to call on a nil receiver.
func (m *Metrics) ObserveResolution(source string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(source).Inc()
}

// ObserveFailure records a failed resolution for the given reason.
// Safe to call on a nil receiver.
func (m *Metrics) ObserveFailure(reason string) {
	if m == nil {
		return
	}
	m.FailuresTotal.WithLabelValues(reason).Inc()
}
