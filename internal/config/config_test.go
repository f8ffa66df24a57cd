package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/pheonix/internal/logging"
	"github.com/annel0/pheonix/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	t.Setenv("PHEONIX_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, block.DefaultFallbackID, cfg.Blocks.FallbackID)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logging:
  dir: /tmp/pheonix-logs
  console_level: warn
server:
  metrics_port: 9100
blocks:
  fallback_id: core:stone
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pheonix-logs", cfg.Logging.Dir)
	assert.Equal(t, "TRACE", cfg.Logging.FileLevel, "незаданные поля берутся из Default")
	assert.Equal(t, 9100, cfg.Server.GetMetricsPort())
	assert.Equal(t, "core:stone", cfg.Blocks.FallbackID)

	opts, err := cfg.Logging.LoggerOptions()
	require.NoError(t, err)
	assert.Equal(t, logging.WARN, opts.ConsoleLevel)
	assert.Equal(t, logging.TRACE, opts.FileLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  metrics_port: 9200\n")
	t.Setenv("PHEONIX_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.MetricsPort)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad level":    "logging:\n  console_level: loud\n",
		"bad fallback": "blocks:\n  fallback_id: null-block\n",
		"bad port":     "server:\n  metrics_port: 70000\n",
		"bad yaml":     "server: [",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cfg := Default()
	cfg.Blocks.FallbackID = "nope"
	assert.ErrorIs(t, cfg.Validate(), block.ErrMalformedIdentifier)
}

func TestGetMetricsPort_EnvFallback(t *testing.T) {
	s := ServerConfig{}

	t.Setenv("PHEONIX_METRICS_PORT", "")
	assert.Equal(t, 2112, s.GetMetricsPort())

	t.Setenv("PHEONIX_METRICS_PORT", "3000")
	assert.Equal(t, 3000, s.GetMetricsPort())

	t.Setenv("PHEONIX_METRICS_PORT", "junk")
	assert.Equal(t, 2112, s.GetMetricsPort())

	s.MetricsPort = 4000
	assert.Equal(t, 4000, s.GetMetricsPort())
}
