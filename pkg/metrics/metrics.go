// Package metrics exposes prometheus collectors for demo request intake.
package metrics

import (
	"net/http"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smartcart"

// Recorder counts intake outcomes and times submissions.
type Recorder struct {
	registry  *prometheus.Registry
	outcomes  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewRecorder registers the intake collectors, plus the go and process
// collectors, on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "demo_requests_total",
			Help:      "Demo request submissions by terminal outcome",
		}, []string{"outcome"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "demo_request_duration_seconds",
			Help:      "Time spent storing a demo request",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}

// Observe implements core.IntakeRecorder.
func (r *Recorder) Observe(outcome core.IntakeOutcome, duration time.Duration) {
	label := outcome.String()
	r.outcomes.WithLabelValues(label).Inc()
	r.durations.WithLabelValues(label).Observe(duration.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
