package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	contents := `
device:
  device_name: "ASIO4ALL v2"
  sample_rate: 48000
encoder:
  sample_count: 24
  sync_amplitude: 1.0
  data_amplitude: 0.2
monitor:
  listen_addr: ":9191"
`
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "ASIO4ALL v2", cfg.Device.Name)
	assert.Equal(t, 48000.0, cfg.Device.SampleRate)
	assert.Equal(t, 24, cfg.Encoder.SampleCount)
	assert.Equal(t, ":9191", cfg.Monitor.ListenAddr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 44100.0, cfg.Device.SampleRate)
	assert.Equal(t, 20, cfg.Encoder.SampleCount)
}
