// Package metrics exposes allocation outcomes and compartment occupancy as
// Prometheus metrics on a dedicated registry.
package metrics

import (
	"net/http"

	"parcellocker/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lockerd"

// AllocationMetrics records send/receive outcomes and the compartment gauge.
// It satisfies commands.OutcomeRecorder.
type AllocationMetrics struct {
	registry     *prometheus.Registry
	sends        *prometheus.CounterVec
	receives     *prometheus.CounterVec
	compartments *prometheus.GaugeVec
}

// NewAllocationMetrics creates the collectors and registers them, together
// with the Go runtime and process collectors, on a fresh registry.
func NewAllocationMetrics() *AllocationMetrics {
	m := &AllocationMetrics{
		registry: prometheus.NewRegistry(),
		sends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "send_total",
			Help:      "Send requests by outcome.",
		}, []string{"outcome"}),
		receives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receive_total",
			Help:      "Receive requests by outcome.",
		}, []string{"outcome"}),
		compartments: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "compartments",
			Help:      "Compartments by status and size, refreshed periodically.",
		}, []string{"status", "size"}),
	}

	m.registry.MustRegister(
		m.sends,
		m.receives,
		m.compartments,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *AllocationMetrics) RecordSend(outcome string) {
	m.sends.WithLabelValues(outcome).Inc()
}

func (m *AllocationMetrics) RecordReceive(outcome string) {
	m.receives.WithLabelValues(outcome).Inc()
}

// SetCompartments replaces every sample of the compartments gauge, dropping
// buckets that no longer exist.
func (m *AllocationMetrics) SetCompartments(buckets []queries.CompartmentOccupancy) {
	m.compartments.Reset()
	for _, b := range buckets {
		m.compartments.WithLabelValues(b.Status.String(), b.Size.String()).Set(float64(b.Count))
	}
}

// Registry returns the registry holding the service metrics.
func (m *AllocationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *AllocationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
