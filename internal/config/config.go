// Package config loads the YAML configuration shared by cmd/encode,
// cmd/decode, cmd/live and cmd/monitor, following the LoadConfig pattern
// from cmd/project2/task3/config and cmd/project3/config in the teacher.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is never consulted by internal/decoder or internal/encoder
// directly (spec §6.3: configuration never alters decode/encode
// semantics); it only wires together transports and ambient tooling.
type Config struct {
	Device struct {
		Name       string  `yaml:"device_name"`
		SampleRate float64 `yaml:"sample_rate"`
	} `yaml:"device"`

	Encoder struct {
		SampleCount   int     `yaml:"sample_count"`
		SyncAmplitude float64 `yaml:"sync_amplitude"`
		DataAmplitude float64 `yaml:"data_amplitude"`
	} `yaml:"encoder"`

	Monitor struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"monitor"`
}

// LoadConfig reads and parses a YAML config file. A missing file is an
// error; callers that want a default-valued Config should check
// os.IsNotExist on the returned error themselves.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", filename, err)
	}
	return &cfg, nil
}

// Default returns the Config cmd/encode and cmd/decode fall back to when
// no -config flag is given.
func Default() *Config {
	var cfg Config
	cfg.Device.Name = "default"
	cfg.Device.SampleRate = 44100
	cfg.Encoder.SampleCount = 20
	cfg.Encoder.SyncAmplitude = 1.0
	cfg.Encoder.DataAmplitude = 0.16
	cfg.Monitor.ListenAddr = ":9090"
	return &cfg
}
