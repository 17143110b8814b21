package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camelcards.hcl")
	content := `
server {
  addr          = ":9090"
  ping_interval = 10
}

log {
  level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.PingInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset values fall back to defaults.
	assert.Equal(t, DefaultConfig().Server.ReadLimit, cfg.Server.ReadLimit)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camelcards.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero ping interval", func(c *Config) { c.Server.PingInterval = 0 }},
		{"negative read limit", func(c *Config) { c.Server.ReadLimit = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
