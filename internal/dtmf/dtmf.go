package dtmf

import "errors"

// Audio format constants for the generated WAV files. The container
// contract in internal/audio depends on these exact values; they are not
// runtime-tunable.
const (
	SampleRate     = 44100 // Hz
	NumChannels    = 1     // mono
	BitsPerSample  = 16
	BytesPerSample = BitsPerSample / 8

	// Amplitude is the per-sinusoid peak. Two sinusoids are summed, so the
	// combined peak can reach 2*Amplitude and briefly exceed the int16
	// range; this clipping headroom matches the reference output and is
	// intentionally not clamped.
	Amplitude = 16382
)

// Input limits for tone generation.
const (
	MinToneDuration = 0.1 // seconds
	MaxToneDuration = 1.0 // seconds

	// MaxDigits bounds the accepted phone number length.
	MaxDigits = 64
)

var (
	// ErrInvalidInput indicates a rejected phone number or tone duration.
	// Detected before any synthesis or I/O.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO indicates the output file could not be created or fully written.
	ErrIO = errors.New("i/o error")
)
