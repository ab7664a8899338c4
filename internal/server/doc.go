// Package server implements the HTTP API for the DTMF tone file service.
// It exposes tone generation endpoints returning WAV audio, plus
// monitoring endpoints for health, configuration, statistics, and
// Prometheus metrics.
package server
