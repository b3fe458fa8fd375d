package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// CollaboratorMetrics records calls made to billing, enterprise and the integration store.
type CollaboratorMetrics interface {
	ObserveCall(collaborator, outcome string, durationSeconds float64)
}

// Noop implements CollaboratorMetrics without emitting anything.
type Noop struct{}

func (Noop) ObserveCall(string, string, float64) {}

// Prom implements CollaboratorMetrics backed by Prometheus.
type Prom struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewProm creates collectors on a dedicated registry.
func NewProm(namespace string) *Prom {
	p := &Prom{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_calls_total",
			Help:      "Calls to external collaborators by name and outcome",
		}, []string{"collaborator", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collaborator_call_duration_seconds",
			Help:      "Latency of calls to external collaborators",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collaborator"}),
	}
	p.registry.MustRegister(p.calls, p.duration)
	return p
}

func (p *Prom) ObserveCall(collaborator, outcome string, durationSeconds float64) {
	p.calls.WithLabelValues(collaborator, outcome).Inc()
	p.duration.WithLabelValues(collaborator).Observe(durationSeconds)
}

// Handler exposes the registry in the Prometheus text format.
func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Observe is a helper for the common "time it and classify the error" pattern.
func Observe(m CollaboratorMetrics, collaborator string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.ObserveCall(collaborator, outcome, time.Since(start).Seconds())
}
