package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	InsuredsCreated prometheus.Counter
	PoliciesCreated prometheus.Counter
	ClaimsCreated   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return newWith(prometheus.DefaultRegisterer)
}

// NewForTest registers metrics on a private registry so parallel tests do not
// collide on the default one.
func NewForTest() *Metrics {
	return newWith(prometheus.NewRegistry())
}

func newWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "insureco_http_requests_total",
			Help: "Total number of HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "insureco_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		InsuredsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "insureco_insureds_created_total",
			Help: "Total number of insured persons created.",
		}),
		PoliciesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "insureco_policies_created_total",
			Help: "Total number of insurance policies created.",
		}),
		ClaimsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "insureco_claim_events_created_total",
			Help: "Total number of claim events created.",
		}),
	}
}

// IncrementInsuredsCreated increments the insureds created counter by 1.
func (m *Metrics) IncrementInsuredsCreated() {
	if m != nil {
		m.InsuredsCreated.Inc()
	}
}

// IncrementPoliciesCreated increments the policies created counter by 1.
func (m *Metrics) IncrementPoliciesCreated() {
	if m != nil {
		m.PoliciesCreated.Inc()
	}
}

// IncrementClaimsCreated increments the claim events created counter by 1.
func (m *Metrics) IncrementClaimsCreated() {
	if m != nil {
		m.ClaimsCreated.Inc()
	}
}
