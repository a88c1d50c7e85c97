// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bodymap"

// Metrics groups the collectors of one server instance on a private registry
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	Heatmaps      *prometheus.CounterVec
	HeatmapTime   prometheus.Histogram
	MarkersPlaced *prometheus.CounterVec
}

// New creates and registers all collectors. withRuntime adds the Go and
// process collectors.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
		)
	}

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Heatmaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heatmap",
			Name:      "computations_total",
			Help:      "Heatmap requests by cache result (hit or miss).",
		}, []string{"cache"}),
		HeatmapTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "heatmap",
			Name:      "compute_duration_seconds",
			Help:      "Time spent building a body map response.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
		MarkersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "placement",
			Name:      "markers_total",
			Help:      "Markers placed by position source (stored or fallback).",
		}, []string{"source"}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Heatmaps, m.HeatmapTime, m.MarkersPlaced)
	return m
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHeatmap records one body map computation
func (m *Metrics) ObserveHeatmap(cacheHit bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "miss"
	if cacheHit {
		result = "hit"
	}
	m.Heatmaps.WithLabelValues(result).Inc()
	m.HeatmapTime.Observe(elapsed.Seconds())
}

// ObserveMarkers records how many markers were placed from stored
// coordinates and how many on the fallback spiral
func (m *Metrics) ObserveMarkers(stored, fallback int) {
	if m == nil {
		return
	}
	m.MarkersPlaced.WithLabelValues("stored").Add(float64(stored))
	m.MarkersPlaced.WithLabelValues("fallback").Add(float64(fallback))
}
