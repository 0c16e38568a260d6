// Package metrics exposes Prometheus instrumentation for the assistant.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the assistant's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	messages          *prometheus.CounterVec
	replies           *prometheus.CounterVec
	inferenceDuration prometheus.Histogram
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbobot_messages_total",
				Help: "Incoming chat messages by recognized intent.",
			},
			[]string{"intent"},
		),
		replies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbobot_replies_total",
				Help: "Replies by source path (action, llm, apology).",
			},
			[]string{"source"},
		),
		inferenceDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "carbobot_inference_duration_seconds",
				Help:    "Latency of inference backend calls.",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
	}

	m.registry.MustRegister(m.messages, m.replies, m.inferenceDuration)
	return m
}

// Handler returns the scrape handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveMessage counts one incoming message.
func (m *Metrics) ObserveMessage(intent string) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(intent).Inc()
}

// ObserveReply counts one outgoing reply.
func (m *Metrics) ObserveReply(source string) {
	if m == nil {
		return
	}
	m.replies.WithLabelValues(source).Inc()
}

// ObserveInference records one inference call's duration in seconds.
func (m *Metrics) ObserveInference(seconds float64) {
	if m == nil {
		return
	}
	m.inferenceDuration.Observe(seconds)
}
