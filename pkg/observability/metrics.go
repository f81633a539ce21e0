package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors for one server instance.
type Metrics struct {
	registry *prometheus.Registry

	StepsTotal     prometheus.Counter
	RunsTotal      *prometheus.CounterVec
	SessionsActive prometheus.Gauge
	HTTPRequests   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on a private registry,
// so tests can build as many instances as they like without collisions.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ribbon_steps_total",
			Help: "Transitions executed across all sessions.",
		}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ribbon_runs_total",
			Help: "Bounded runs by outcome.",
		}, []string{"outcome"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ribbon_sessions_active",
			Help: "Sessions currently held by the manager.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ribbon_http_requests_total",
			Help: "API requests by route and status code.",
		}, []string{"route", "code"}),
	}

	reg.MustRegister(m.StepsTotal, m.RunsTotal, m.SessionsActive, m.HTTPRequests)
	return m
}

// Handler returns the /metrics endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSteps adds n executed transitions. Nil-safe.
func (m *Metrics) ObserveSteps(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.StepsTotal.Add(float64(n))
}

// ObserveRun records a finished run by outcome tag. Nil-safe.
func (m *Metrics) ObserveRun(outcome string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(outcome).Inc()
}

// SetActiveSessions updates the session gauge. Nil-safe.
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.SessionsActive.Set(float64(n))
}

// ObserveRequest counts one API request. Nil-safe.
func (m *Metrics) ObserveRequest(route, code string) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, code).Inc()
}
