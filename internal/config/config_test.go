package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "execdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{ConfigEnv, AssetRootEnv, LogFileEnv, LogLevelEnv, OTLPEndpointEnv, ServiceNameEnv} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 60*time.Millisecond, cfg.RevealInterval())
	assert.False(t, cfg.TelemetryEnabled())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "assets", cfg.Display.AssetRoot)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
display:
  asset_root: /srv/deck
  reveal: false
  reveal_interval: 250ms
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/deck", cfg.Display.AssetRoot)
	assert.False(t, cfg.Display.Reveal)
	assert.Equal(t, 250*time.Millisecond, cfg.RevealInterval())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "dark", cfg.Display.MarkdownStyle)
	assert.Equal(t, "execdeck", cfg.Telemetry.ServiceName)
}

func TestLoad_ConfigEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "display:\n  markdown_style: light\n")
	t.Setenv(ConfigEnv, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Display.MarkdownStyle)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "display:\n  asset_root: from-file\nlogging:\n  level: warn\n")
	t.Setenv(AssetRootEnv, "from-env")
	t.Setenv(LogFileEnv, "/tmp/execdeck.log")
	t.Setenv(LogLevelEnv, "error")
	t.Setenv(OTLPEndpointEnv, "localhost:4318")
	t.Setenv(ServiceNameEnv, "briefing")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Display.AssetRoot)
	assert.Equal(t, "/tmp/execdeck.log", cfg.Logging.File)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "briefing", cfg.Telemetry.ServiceName)
	assert.True(t, cfg.TelemetryEnabled())
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad duration", "display:\n  reveal_interval: soon\n", "display.reveal_interval"},
		{"negative duration", "display:\n  reveal_interval: -1s\n", "must be positive"},
		{"bad level", "logging:\n  level: loud\n", "invalid logging.level"},
		{"bad yaml", "display: [\n", "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
