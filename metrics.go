package p11trc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/peterbourgon/p11trc/ck"
)

type metrics struct {
	calls        *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	loadFailures *prometheus.CounterVec
}

// newMetrics creates the proxy's collectors, and registers them with r if it
// isn't nil.
func newMetrics(r prometheus.Registerer) *metrics {
	f := promauto.With(r)
	return &metrics{
		calls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "p11trc_calls_total",
				Help: "Total number of calls forwarded to the delegate, by function and status",
			},
			[]string{"function", "rv"},
		),

		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "p11trc_call_duration_seconds",
				Help:    "Time spent in the delegate, by function",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to 2.6s
			},
			[]string{"function"},
		),

		loadFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "p11trc_load_failures_total",
				Help: "Total number of failures to load the delegate, by phase",
			},
			[]string{"phase"},
		),
	}
}

func (m *metrics) call(function string, rv ck.RV, took time.Duration) {
	m.calls.WithLabelValues(function, rv.String()).Inc()
	m.duration.WithLabelValues(function).Observe(took.Seconds())
}

func (m *metrics) loadFailure(phase Phase) {
	m.loadFailures.WithLabelValues(string(phase)).Inc()
}

// observe records a completed call.
func (p *Proxy) observe(function string, rv ck.RV, start time.Time, took time.Duration) {
	p.metrics.call(function, rv, took)
	p.calls.add(function, rv, start, took)
}
