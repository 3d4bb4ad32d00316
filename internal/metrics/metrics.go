package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Order outcomes, one per error kind plus success.
const (
	OutcomeCreated         = "created"
	OutcomeInvalidAmount   = "invalid_amount"
	OutcomeNotConfigured   = "not_configured"
	OutcomeUpstreamFailure = "upstream_failure"
	OutcomeUnexpected      = "unexpected"
)

type Orders struct {
	total    *prometheus.CounterVec
	upstream prometheus.Histogram
}

func NewOrders(reg prometheus.Registerer) *Orders {
	m := &Orders{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "razorpay_orders_total",
			Help: "Order creation attempts by outcome.",
		}, []string{"outcome"}),
		upstream: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "razorpay_upstream_duration_seconds",
			Help:    "Latency of the Razorpay order API call.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.total, m.upstream)
	return m
}

// Observe is safe on a nil receiver so callers without metrics skip the check.
func (m *Orders) Observe(outcome string) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(outcome).Inc()
}

func (m *Orders) ObserveUpstream(d time.Duration) {
	if m == nil {
		return
	}
	m.upstream.Observe(d.Seconds())
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
