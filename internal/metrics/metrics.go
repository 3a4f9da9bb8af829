// Package metrics exports tag generation metrics in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for generation requests.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Recorder holds the service collectors on a private registry. A nil
// *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	latency   prometheus.Histogram
	tagsOut   prometheus.Histogram
	available prometheus.Histogram
}

// New creates a Recorder with Go runtime and process collectors registered.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{registry: registry}

	r.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagsmith",
			Subsystem: "generator",
			Name:      "requests_total",
			Help:      "Total number of tag generation requests",
		},
		[]string{"outcome"},
	)

	r.latency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tagsmith",
			Subsystem: "generator",
			Name:      "duration_seconds",
			Help:      "Tag generation latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	r.tagsOut = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tagsmith",
			Subsystem: "generator",
			Name:      "tags_returned",
			Help:      "Number of tags returned per successful request",
			Buckets:   []float64{1, 5, 13, 25, 50, 100, 300},
		},
	)

	r.available = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tagsmith",
			Subsystem: "generator",
			Name:      "candidates_available",
			Help:      "Number of unique candidates before filtering",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 8),
		},
	)

	registry.MustRegister(r.requests, r.latency, r.tagsOut, r.available)
	return r
}

// ObserveGeneration records one request.
func (r *Recorder) ObserveGeneration(outcome string, d time.Duration, returned, available int) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	r.latency.Observe(d.Seconds())
	r.tagsOut.Observe(float64(returned))
	r.available.Observe(float64(available))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
