package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kotatsubug/easydtmf/internal/dtmf"
)

// Config represents the complete service configuration
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Audio     AudioConfig     `yaml:"audio"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// HTTPConfig contains HTTP API server configuration
type HTTPConfig struct {
	Port    int    `yaml:"port"`
	Address string `yaml:"address"`
	Enabled bool   `yaml:"enabled"`
}

// AudioConfig pins the output audio format. The canonical container
// contract requires 44100 Hz mono 16-bit PCM; these fields exist so a
// deployment cannot silently diverge from it.
type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
	BitDepth   int `yaml:"bit_depth"`
	Amplitude  int `yaml:"amplitude"`
}

// GeneratorConfig contains tone generation parameters
type GeneratorConfig struct {
	DefaultToneDuration float64 `yaml:"default_tone_duration"` // seconds
	OutputDir           string  `yaml:"output_dir"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http config: %w", err)
	}

	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates HTTP configuration
func (h *HTTPConfig) Validate() error {
	if h.Enabled {
		if h.Port < 1 || h.Port > 65535 {
			return fmt.Errorf("http port must be between 1 and 65535, got %d", h.Port)
		}

		if h.Address == "" {
			return fmt.Errorf("http address cannot be empty when HTTP is enabled")
		}
	}

	return nil
}

// Validate validates audio configuration
func (a *AudioConfig) Validate() error {
	if a.SampleRate != dtmf.SampleRate {
		return fmt.Errorf("sample_rate must be %d Hz for the canonical WAV container, got %d", dtmf.SampleRate, a.SampleRate)
	}

	if a.Channels != dtmf.NumChannels {
		return fmt.Errorf("channels must be %d (mono) for the canonical WAV container, got %d", dtmf.NumChannels, a.Channels)
	}

	if a.BitDepth != dtmf.BitsPerSample {
		return fmt.Errorf("bit_depth must be %d for the canonical WAV container, got %d", dtmf.BitsPerSample, a.BitDepth)
	}

	if a.Amplitude != dtmf.Amplitude {
		return fmt.Errorf("amplitude must be %d to match reference output, got %d", dtmf.Amplitude, a.Amplitude)
	}

	return nil
}

// Validate validates generator configuration
func (g *GeneratorConfig) Validate() error {
	if g.DefaultToneDuration < dtmf.MinToneDuration || g.DefaultToneDuration > dtmf.MaxToneDuration {
		return fmt.Errorf("default_tone_duration must be within [%.1f, %.1f] seconds, got %f",
			dtmf.MinToneDuration, dtmf.MaxToneDuration, g.DefaultToneDuration)
	}

	if g.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error; got %q", l.Level)
	}

	switch l.Format {
	case "json", "text", "":
	default:
		return fmt.Errorf("format must be json or text, got %q", l.Format)
	}

	return nil
}
