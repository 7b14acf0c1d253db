package obs

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for the HTTP surface and upstream calls.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration *prometheus.HistogramVec // labels: method, route

	UpstreamRequests *prometheus.CounterVec   // labels: op, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: op

	StationWarnings *prometheus.CounterVec // labels: warning
}

// NewMetrics creates all collectors and registers them with reg.
// Tests pass prometheus.NewRegistry() to avoid duplicate registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecovia",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ecovia",
			Name:      "http_request_duration_seconds",
			Help:      "End-to-end HTTP request duration.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecovia",
			Name:      "upstream_requests_total",
			Help:      "Calls to OpenRouteService and OpenChargeMap by operation and outcome.",
		}, []string{"op", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ecovia",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream call duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"op"}),
		StationWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecovia",
			Name:      "station_lookup_warnings_total",
			Help:      "Station listings answered empty because the directory failed.",
		}, []string{"warning"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.StationWarnings,
	)

	return m
}
