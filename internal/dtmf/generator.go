package dtmf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kotatsubug/easydtmf/internal/audio"
)

// Generator converts phone number strings into DTMF audio. It is stateless
// apart from its logger and safe for concurrent use provided concurrent
// CreateFile calls target distinct paths.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a tone generator. A nil logger defaults to the
// process-wide slog default.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// ValidateRequest checks a phone number and tone duration against the
// accepted alphabet and duration range. It returns an error wrapping
// ErrInvalidInput describing the first violation found.
func ValidateRequest(toneDuration float64, digits string) error {
	if digits == "" {
		return fmt.Errorf("%w: phone number is empty", ErrInvalidInput)
	}

	if len(digits) > MaxDigits {
		return fmt.Errorf("%w: phone number exceeds %d symbols, got %d", ErrInvalidInput, MaxDigits, len(digits))
	}

	for i := 0; i < len(digits); i++ {
		if !ValidSymbol(digits[i]) {
			return fmt.Errorf("%w: invalid symbol %q at position %d", ErrInvalidInput, digits[i], i)
		}
	}

	if toneDuration < MinToneDuration || toneDuration > MaxToneDuration {
		return fmt.Errorf("%w: tone duration must be within [%.1f, %.1f] seconds, got %g",
			ErrInvalidInput, MinToneDuration, MaxToneDuration, toneDuration)
	}

	return nil
}

// Generate validates the request and returns the concatenated PCM-16
// buffer for the whole phone number: one tone of exactly
// floor(SampleRate * toneDuration) samples per symbol, in input order.
// Dashes contribute full-duration silence.
func (g *Generator) Generate(toneDuration float64, digits string) ([]int16, error) {
	if err := ValidateRequest(toneDuration, digits); err != nil {
		return nil, err
	}

	perTone := SamplesPerTone(toneDuration, SampleRate)
	samples := make([]int16, 0, perTone*len(digits))

	for i := 0; i < len(digits); i++ {
		pair, _ := Frequencies(digits[i])
		samples = append(samples, Synthesize(pair, toneDuration, SampleRate, Amplitude)...)
	}

	return samples, nil
}

// CreateFile generates DTMF audio for the phone number and writes it to
// path as a mono 16-bit 44100 Hz WAV file. The WAV header sizes are derived
// from the sample count actually written. The file is written atomically:
// data goes to a temporary file in the destination directory which is
// renamed into place only after a complete write, so a failure never leaves
// a partial file at path.
func (g *Generator) CreateFile(path string, toneDuration float64, digits string) error {
	samples, err := g.Generate(toneDuration, digits)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", ErrIO, path, err)
	}
	tmpName := tmp.Name()

	if err := audio.Write(tmp, samples, SampleRate); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write %s: %v", ErrIO, path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close %s: %v", ErrIO, path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to finalize %s: %v", ErrIO, path, err)
	}

	g.logger.Debug("DTMF file written",
		slog.String("path", path),
		slog.Int("symbols", len(digits)),
		slog.Float64("tone_duration", toneDuration),
		slog.Int("samples", len(samples)),
	)

	return nil
}
