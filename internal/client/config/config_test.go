package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api/v1", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "roamer.db", cfg.DatabasePath)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv(envBaseURL, "https://api.example.com/v1")
	t.Setenv(envTimeout, "30")
	t.Setenv(envDBPath, "/tmp/roamer-test.db")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://api.example.com/v1", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/roamer-test.db", cfg.DatabasePath)
}

func TestParseEnv_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv(envTimeout, "not-a-number")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout": "45s"}`), 0o600))

	var cfg Config
	cfg.LoadDefaults()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, overlayJSON(&cfg, data))

	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "roamer.db", cfg.DatabasePath)
}

func TestOverlayJSON_InvalidDocument(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	require.Error(t, overlayJSON(&cfg, []byte(`{broken`)))
}
