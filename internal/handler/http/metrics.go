package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Auth failure reasons used as the "reason" label of AuthFailuresTotal.
const (
	reasonMissingHeader   = "missing_header"
	reasonMalformedHeader = "malformed_header"
	reasonExpired         = "expired"
	reasonInvalid         = "invalid"
)

// Metrics contains the Prometheus collectors of the HTTP layer.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	AuthFailuresTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "identity_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_auth_failures_total",
				Help: "Total number of rejected authenticated requests by reason",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.AuthFailuresTotal)

	return m
}
