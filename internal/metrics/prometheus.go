// Package metrics defines the Prometheus instrumentation for the DTMF tone
// file service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the DTMF service
type Metrics struct {
	// Generation metrics
	TonesGenerated     prometheus.Counter
	FilesWritten       prometheus.Counter
	GenerationErrors   *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	AudioBytes         prometheus.Histogram

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPErrors          *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		TonesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dtmf_tones_generated_total",
			Help: "Total number of individual DTMF tones synthesized",
		}),
		FilesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dtmf_files_written_total",
			Help: "Total number of WAV files successfully written",
		}),
		GenerationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dtmf_generation_errors_total",
			Help: "Total number of failed generation requests",
		}, []string{"reason"}),
		GenerationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dtmf_generation_duration_seconds",
			Help:    "Time spent synthesizing and encoding DTMF audio",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), // 0.1ms to ~1.6s
		}),
		AudioBytes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dtmf_audio_bytes",
			Help:    "Size of generated audio payloads in bytes",
			Buckets: prometheus.ExponentialBuckets(8192, 2, 12), // 8KB to ~16MB
		}),

		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dtmf_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dtmf_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		HTTPErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dtmf_http_errors_total",
			Help: "Total number of HTTP errors",
		}, []string{"method", "endpoint", "error_type"}),
	}
}

// RecordGeneration records a successful generation: the number of tones
// synthesized, the audio payload size, and the time taken.
func (m *Metrics) RecordGeneration(tones int, audioBytes int, durationSeconds float64) {
	m.TonesGenerated.Add(float64(tones))
	m.AudioBytes.Observe(float64(audioBytes))
	m.GenerationDuration.Observe(durationSeconds)
}

// RecordFileWritten increments the files written counter
func (m *Metrics) RecordFileWritten() {
	m.FilesWritten.Inc()
}

// RecordGenerationError increments the error counter for the given reason
func (m *Metrics) RecordGenerationError(reason string) {
	m.GenerationErrors.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordHTTPError records an HTTP error
func (m *Metrics) RecordHTTPError(method, endpoint, errorType string) {
	m.HTTPErrors.WithLabelValues(method, endpoint, errorType).Inc()
}
