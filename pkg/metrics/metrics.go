package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed by the service.
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	upstreamRequestsTotal *prometheus.CounterVec

	pickerSessionsActive  prometheus.Gauge
	pickerSessionsExpired prometheus.Counter
}

// New registers and returns the service metrics. serviceName becomes a
// constant label on every collector.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed, by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds, by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		httpRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served.",
			ConstLabels: constLabels,
		}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the marketplace API, by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		pickerSessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "picker_sessions_active",
			Help:        "Number of reservation-picker sessions currently held in memory.",
			ConstLabels: constLabels,
		}),

		pickerSessionsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "picker_sessions_expired_total",
			Help:        "Total number of picker sessions removed by the expiry sweep.",
			ConstLabels: constLabels,
		}),
	}
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// IncRequestsInFlight marks the start of an HTTP request.
func (m *Metrics) IncRequestsInFlight() {
	m.httpRequestsInFlight.Inc()
}

// DecRequestsInFlight marks the end of an HTTP request.
func (m *Metrics) DecRequestsInFlight() {
	m.httpRequestsInFlight.Dec()
}

// RecordUpstreamRequest records one call to the marketplace API.
// outcome is "ok", "degraded" or "error".
func (m *Metrics) RecordUpstreamRequest(operation, outcome string) {
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetActiveSessions sets the current number of picker sessions.
func (m *Metrics) SetActiveSessions(n int) {
	m.pickerSessionsActive.Set(float64(n))
}

// AddExpiredSessions counts sessions removed by the expiry sweep.
func (m *Metrics) AddExpiredSessions(n int) {
	m.pickerSessionsExpired.Add(float64(n))
}
