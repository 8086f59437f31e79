// SPDX-License-Identifier: EPL-2.0

// Package metrics holds the Prometheus instruments of the HTTP server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is registered against its own registry so that several servers
// (and tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPErrors          *prometheus.CounterVec

	AudioRendered    prometheus.Counter
	AudioBytes       prometheus.Histogram
	AudioEmpty       prometheus.Counter
	AudioCacheHits   prometheus.Counter
	AudioCacheMisses prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "morse_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "morse_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		HTTPErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "morse_http_errors_total",
			Help: "Total number of HTTP errors",
		}, []string{"method", "endpoint", "error_type"}),

		AudioRendered: f.NewCounter(prometheus.CounterOpts{
			Name: "morse_audio_rendered_total",
			Help: "Total number of WAV files rendered",
		}),
		AudioBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "morse_audio_size_bytes",
			Help:    "Size of rendered WAV files in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8), // 1KB to 16MB
		}),
		AudioEmpty: f.NewCounter(prometheus.CounterOpts{
			Name: "morse_audio_empty_total",
			Help: "Total number of requests that rendered no audio",
		}),
		AudioCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "morse_audio_cache_hits_total",
			Help: "Total number of audio cache hits",
		}),
		AudioCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "morse_audio_cache_misses_total",
			Help: "Total number of audio cache misses",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordHTTPError records an HTTP error
func (m *Metrics) RecordHTTPError(method, endpoint, errorType string) {
	m.HTTPErrors.WithLabelValues(method, endpoint, errorType).Inc()
}

// RecordRender records one rendered file of size bytes. A zero size counts
// as an empty render.
func (m *Metrics) RecordRender(size int) {
	if size == 0 {
		m.AudioEmpty.Inc()
		return
	}
	m.AudioRendered.Inc()
	m.AudioBytes.Observe(float64(size))
}

func (m *Metrics) RecordCache(hit bool) {
	if hit {
		m.AudioCacheHits.Inc()
		return
	}
	m.AudioCacheMisses.Inc()
}
