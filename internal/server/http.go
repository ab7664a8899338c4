package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kotatsubug/easydtmf/internal/audio"
	"github.com/kotatsubug/easydtmf/internal/config"
	"github.com/kotatsubug/easydtmf/internal/dtmf"
	"github.com/kotatsubug/easydtmf/internal/metrics"
)

// HTTPServer provides the HTTP API for tone generation and monitoring
type HTTPServer struct {
	server    *http.Server
	logger    *slog.Logger
	config    *config.Config
	generator *dtmf.Generator
	metrics   *metrics.Metrics

	// Server state
	startTime    time.Time
	dialRequests uint64
	filesWritten uint64
	lastDial     time.Time
	mu           sync.RWMutex
}

// HTTPServerConfig contains HTTP server configuration
type HTTPServerConfig struct {
	Port    int    `yaml:"port"`
	Address string `yaml:"address"`
	Enabled bool   `yaml:"enabled"`
}

// DialRequest is the JSON body accepted by the dial endpoints
type DialRequest struct {
	Digits       string  `json:"digits"`
	ToneDuration float64 `json:"tone_duration,omitempty"` // seconds; defaults to generator.default_tone_duration
	Filename     string  `json:"filename,omitempty"`      // /dial/file only
}

// DialFileResponse is returned by /dial/file after a successful write
type DialFileResponse struct {
	Path  string      `json:"path"`
	Audio *audio.Info `json:"audio"`
}

// NewHTTPServer creates a new HTTP API server
func NewHTTPServer(cfg HTTPServerConfig, logger *slog.Logger,
	appConfig *config.Config, generator *dtmf.Generator, m *metrics.Metrics) *HTTPServer {

	h := &HTTPServer{
		logger:    logger,
		config:    appConfig,
		generator: generator,
		metrics:   m,
		startTime: time.Now(),
	}

	// Create HTTP server with routes
	mux := http.NewServeMux()
	h.setupRoutes(mux)

	h.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return h
}

// setupRoutes configures HTTP API routes
func (h *HTTPServer) setupRoutes(mux *http.ServeMux) {
	// Tone generation endpoints
	mux.HandleFunc("/dial", h.withMetrics("/dial", h.handleDial))
	mux.HandleFunc("/dial/file", h.withMetrics("/dial/file", h.handleDialFile))

	// Health check endpoint
	mux.HandleFunc("/health", h.withMetrics("/health", h.handleHealth))

	// Configuration endpoint
	mux.HandleFunc("/config", h.withMetrics("/config", h.handleConfig))

	// Statistics endpoint
	mux.HandleFunc("/stats", h.withMetrics("/stats", h.handleStats))

	// Prometheus metrics endpoint (no metrics needed for metrics endpoint)
	mux.Handle("/metrics", promhttp.Handler())

	// Root endpoint with API documentation
	mux.HandleFunc("/", h.withMetrics("/", h.handleRoot))
}

// withMetrics wraps an HTTP handler with metrics collection
func (h *HTTPServer) withMetrics(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		// Create a response writer wrapper to capture status code
		ww := &responseWriter{ResponseWriter: w, statusCode: 200}

		// Call the original handler
		handler(ww, r)

		// Record metrics
		duration := time.Since(startTime).Seconds()
		statusCode := fmt.Sprintf("%d", ww.statusCode)

		h.metrics.RecordHTTPRequest(r.Method, endpoint, statusCode, duration)

		// Record error if status code indicates an error
		if ww.statusCode >= 400 {
			errorType := "client_error"
			if ww.statusCode >= 500 {
				errorType = "server_error"
			}
			h.metrics.RecordHTTPError(r.Method, endpoint, errorType)
		}
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Start starts the HTTP server
func (h *HTTPServer) Start() error {
	h.logger.Info("Starting HTTP API server",
		slog.String("address", h.server.Addr),
	)

	go func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (h *HTTPServer) Stop(ctx context.Context) error {
	h.logger.Info("Stopping HTTP API server...")

	return h.server.Shutdown(ctx)
}

// decodeDialRequest parses and normalizes a dial request body, applying the
// configured default tone duration when none is given.
func (h *HTTPServer) decodeDialRequest(r *http.Request) (DialRequest, error) {
	var req DialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}

	if req.ToneDuration == 0 {
		req.ToneDuration = h.config.Generator.DefaultToneDuration
	}

	return req, nil
}

// handleDial implements POST /dial: synthesizes DTMF audio for the phone
// number and returns the WAV file in the response body.
func (h *HTTPServer) handleDial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := h.decodeDialRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	startTime := time.Now()
	samples, err := h.generator.Generate(req.ToneDuration, req.Digits)
	if err != nil {
		h.writeGenerationError(w, r, err)
		return
	}

	data, err := audio.Encode(samples, dtmf.SampleRate)
	if err != nil {
		h.metrics.RecordGenerationError("encode")
		http.Error(w, "Failed to encode audio", http.StatusInternalServerError)
		return
	}

	h.recordDial(len(req.Digits), len(data), time.Since(startTime).Seconds(), false)

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}

// handleDialFile implements POST /dial/file: writes the generated WAV under
// the configured output directory and returns its metadata.
func (h *HTTPServer) handleDialFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := h.decodeDialRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validateFilename(req.Filename); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := filepath.Join(h.config.Generator.OutputDir, req.Filename)

	startTime := time.Now()
	if err := h.generator.CreateFile(path, req.ToneDuration, req.Digits); err != nil {
		h.writeGenerationError(w, r, err)
		return
	}

	samples := dtmf.SamplesPerTone(req.ToneDuration, dtmf.SampleRate) * len(req.Digits)
	sizeBytes := audio.HeaderSize + samples*dtmf.BytesPerSample
	h.recordDial(len(req.Digits), sizeBytes, time.Since(startTime).Seconds(), true)

	resp := DialFileResponse{
		Path: path,
		Audio: &audio.Info{
			SampleRate:    dtmf.SampleRate,
			Channels:      dtmf.NumChannels,
			BitsPerSample: dtmf.BitsPerSample,
			Duration:      float64(samples) / float64(dtmf.SampleRate),
			DataSize:      uint32(samples * dtmf.BytesPerSample),
			NumSamples:    uint32(samples),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// writeGenerationError maps generator errors to HTTP status codes
func (h *HTTPServer) writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dtmf.ErrInvalidInput):
		h.metrics.RecordGenerationError("invalid_input")
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dtmf.ErrIO):
		h.metrics.RecordGenerationError("io")
		h.logger.Error("Generation I/O failure",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		http.Error(w, "Failed to write audio file", http.StatusInternalServerError)
	default:
		h.metrics.RecordGenerationError("internal")
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// recordDial updates server statistics and generation metrics
func (h *HTTPServer) recordDial(tones, sizeBytes int, durationSeconds float64, wroteFile bool) {
	h.metrics.RecordGeneration(tones, sizeBytes, durationSeconds)
	if wroteFile {
		h.metrics.RecordFileWritten()
	}

	h.mu.Lock()
	h.dialRequests++
	if wroteFile {
		h.filesWritten++
	}
	h.lastDial = time.Now()
	h.mu.Unlock()
}

// validateFilename rejects names that would escape the output directory or
// produce a non-WAV artifact.
func validateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename is required")
	}

	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("filename must not contain path separators")
	}

	if !strings.HasSuffix(name, ".wav") || name == ".wav" {
		return fmt.Errorf("filename must end in .wav")
	}

	return nil
}

// handleHealth implements the /health endpoint
func (h *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.RLock()
	dialRequests := h.dialRequests
	filesWritten := h.filesWritten
	h.mu.RUnlock()

	uptime := time.Since(h.startTime)

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    uptime.String(),
		"service": map[string]interface{}{
			"name":    "easydtmf",
			"version": "1.0.0",
		},
		"components": map[string]interface{}{
			"generator": map[string]interface{}{
				"status":        "running",
				"dial_requests": dialRequests,
				"files_written": filesWritten,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// handleConfig implements the /config endpoint
func (h *HTTPServer) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sanitizedConfig := map[string]interface{}{
		"http": map[string]interface{}{
			"port":    h.config.HTTP.Port,
			"address": h.config.HTTP.Address,
			"enabled": h.config.HTTP.Enabled,
		},
		"audio": map[string]interface{}{
			"sample_rate": h.config.Audio.SampleRate,
			"channels":    h.config.Audio.Channels,
			"bit_depth":   h.config.Audio.BitDepth,
			"amplitude":   h.config.Audio.Amplitude,
		},
		"generator": map[string]interface{}{
			"default_tone_duration": h.config.Generator.DefaultToneDuration,
			"output_dir":            h.config.Generator.OutputDir,
			"min_tone_duration":     dtmf.MinToneDuration,
			"max_tone_duration":     dtmf.MaxToneDuration,
			"max_digits":            dtmf.MaxDigits,
		},
		"logging": map[string]interface{}{
			"level":  h.config.Logging.Level,
			"format": h.config.Logging.Format,
			"output": h.config.Logging.Output,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sanitizedConfig)
}

// handleStats implements the /stats endpoint
func (h *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.RLock()
	dialRequests := h.dialRequests
	filesWritten := h.filesWritten
	lastDial := h.lastDial
	h.mu.RUnlock()

	stats := map[string]interface{}{
		"uptime":    time.Since(h.startTime).String(),
		"timestamp": time.Now().UTC(),
		"generation": map[string]interface{}{
			"dial_requests": dialRequests,
			"files_written": filesWritten,
		},
	}
	if !lastDial.IsZero() {
		stats["generation"].(map[string]interface{})["last_dial"] = lastDial.UTC()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// handleRoot implements the / endpoint with API documentation
func (h *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	apiDoc := map[string]interface{}{
		"service": "DTMF Tone File Service",
		"version": "1.0.0",
		"endpoints": map[string]interface{}{
			"POST /dial":      "Generate DTMF audio for a phone number, returns audio/wav",
			"POST /dial/file": "Generate DTMF audio and write it under the output directory",
			"GET /health":     "Service health check",
			"GET /config":     "Get service configuration",
			"GET /stats":      "Get service statistics",
			"GET /metrics":    "Prometheus metrics",
			"GET /":           "API documentation",
		},
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(apiDoc)
}
