// Package monitoring provides Prometheus instrumentation for the service.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	suggestionsComputed prometheus.Counter
	suggestionCacheHits prometheus.Counter
	suggestionDuration  prometheus.Histogram
}

// NewMetrics creates and registers the service collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route, and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		suggestionsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "suggestions_computed_total",
			Help: "Suggestion rankings computed, excluding cache hits.",
		}),
		suggestionCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "suggestion_cache_hits_total",
			Help: "Suggestion requests served from cache.",
		}),
		suggestionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "suggestion_duration_seconds",
			Help:    "End-to-end suggestion computation latency.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
	}
	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.suggestionsComputed,
		m.suggestionCacheHits,
		m.suggestionDuration,
	)
	return m
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveSuggestion records one suggestion computation.
func (m *Metrics) ObserveSuggestion(duration time.Duration, cacheHit bool) {
	if cacheHit {
		m.suggestionCacheHits.Inc()
		return
	}
	m.suggestionsComputed.Inc()
	m.suggestionDuration.Observe(duration.Seconds())
}
