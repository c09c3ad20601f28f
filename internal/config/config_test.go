package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval())
	assert.Equal(t, 30, cfg.HistoryDays)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 60*time.Second, cfg.StartupTimeout())
	assert.False(t, cfg.DebugLogging)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
api_base_url: "https://bot.internal:9000"
refresh_interval_sec: 15
history_days: 7
request_timeout_sec: 5
debug_logging: true
log_file: "/tmp/monitor.log"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://bot.internal:9000", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RefreshInterval())
	assert.Equal(t, 7, cfg.HistoryDays)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.True(t, cfg.DebugLogging)
	assert.Equal(t, "/tmp/monitor.log", cfg.LogFile)
}

func TestLoadConfig_RejectsBadURL(t *testing.T) {
	path := writeConfig(t, `api_base_url: "ftp://bot.internal"`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadNumbers(t *testing.T) {
	cases := map[string]string{
		"zero refresh":  `refresh_interval_sec: 0`,
		"negative days": `history_days: -1`,
		"zero timeout":  `request_timeout_sec: 0`,
		"zero startup":  `startup_timeout_sec: 0`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EnvOverridesURL(t *testing.T) {
	t.Setenv("FUNDING_MONITOR_API_BASE_URL", "http://10.0.0.5:8000")

	cfg, err := LoadConfig(writeConfig(t, `api_base_url: "http://localhost:8000"`))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.APIBaseURL)
}
