package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "volcanoes.csv", cfg.CatalogPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 25, cfg.HistogramBins)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("VOLCANO_CSV_PATH", "/data/gvp_export.csv")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("HISTOGRAM_BINS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/gvp_export.csv", cfg.CatalogPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.HistogramBins)
}

func TestLoad_EmptyCatalogPath(t *testing.T) {
	t.Setenv("VOLCANO_CSV_PATH", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VOLCANO_CSV_PATH")
}

func TestLoad_EmptyHTTPAddr(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_ADDR")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidHistogramBins(t *testing.T) {
	t.Setenv("HISTOGRAM_BINS", "zero")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HISTOGRAM_BINS")
}

func TestLoad_HistogramBinsOutOfRange(t *testing.T) {
	t.Setenv("HISTOGRAM_BINS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HISTOGRAM_BINS")
}

func TestLoad_HistogramBinsTooLarge(t *testing.T) {
	t.Setenv("HISTOGRAM_BINS", "9999")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HISTOGRAM_BINS")
}
