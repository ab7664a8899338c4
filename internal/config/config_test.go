package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Port:    8080,
			Address: "0.0.0.0",
			Enabled: true,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Channels:   1,
			BitDepth:   16,
			Amplitude:  16382,
		},
		Generator: GeneratorConfig{
			DefaultToneDuration: 0.5,
			OutputDir:           "./out",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid configuration", func(c *Config) {}, false},
		{"http disabled skips port check", func(c *Config) { c.HTTP.Enabled = false; c.HTTP.Port = 0 }, false},
		{"invalid http port", func(c *Config) { c.HTTP.Port = 70000 }, true},
		{"empty http address", func(c *Config) { c.HTTP.Address = "" }, true},
		{"wrong sample rate", func(c *Config) { c.Audio.SampleRate = 8000 }, true},
		{"stereo", func(c *Config) { c.Audio.Channels = 2 }, true},
		{"wrong bit depth", func(c *Config) { c.Audio.BitDepth = 24 }, true},
		{"wrong amplitude", func(c *Config) { c.Audio.Amplitude = 32767 }, true},
		{"tone duration too short", func(c *Config) { c.Generator.DefaultToneDuration = 0.05 }, true},
		{"tone duration too long", func(c *Config) { c.Generator.DefaultToneDuration = 1.5 }, true},
		{"empty output dir", func(c *Config) { c.Generator.OutputDir = "" }, true},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	content := `
http:
  port: 8080
  address: "127.0.0.1"
  enabled: true
audio:
  sample_rate: 44100
  channels: 1
  bit_depth: 16
  amplitude: 16382
generator:
  default_tone_duration: 0.5
  output_dir: "./out"
logging:
  level: info
  format: text
  output: stdout
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("Expected http port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Generator.DefaultToneDuration != 0.5 {
		t.Errorf("Expected default tone duration 0.5, got %f", cfg.Generator.DefaultToneDuration)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http: [not a mapping"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	content := `
http:
  port: 8080
  address: "127.0.0.1"
  enabled: true
audio:
  sample_rate: 22050
  channels: 1
  bit_depth: 16
  amplitude: 16382
generator:
  default_tone_duration: 0.5
  output_dir: "./out"
logging:
  level: info
  format: text
  output: stdout
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for wrong sample rate")
	}
}
