// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for message delivery.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "slackkit"

// Delivery outcomes used as the "outcome" label.
const (
	OutcomeDelivered = "delivered"
	OutcomeInvalid   = "invalid"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	// OutcomeSkipped marks a scheduled run dropped because the previous
	// run of the same job was still in flight.
	OutcomeSkipped = "skipped"
)

// Metrics holds the application's collectors on a dedicated registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	deliveries *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	requests   *prometheus.CounterVec
	jobRuns    *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Messages handed to a channel, by channel and outcome.",
		}, []string{"channel", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_duration_seconds",
			Help:      "Time spent rendering and posting a message.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"channel"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      "HTTP requests served by the gateway, by route and status code.",
		}, []string{"route", "code"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_runs_total",
			Help:      "Scheduled job runs, by job and outcome.",
		}, []string{"job", "outcome"}),
	}
	m.registry.MustRegister(
		m.deliveries,
		m.duration,
		m.requests,
		m.jobRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveDelivery records one delivery attempt.
func (m *Metrics) ObserveDelivery(channel, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(channel, outcome).Inc()
	m.duration.WithLabelValues(channel).Observe(elapsed.Seconds())
}

// ObserveRequest records one gateway request.
func (m *Metrics) ObserveRequest(route string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// ObserveJobRun records one scheduled job run.
func (m *Metrics) ObserveJobRun(job, outcome string) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, outcome).Inc()
}
