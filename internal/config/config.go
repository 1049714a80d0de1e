package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	CatalogPath     string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// HistogramBins is the default bin count for the eruption histogram when
	// a request does not specify one.
	HistogramBins int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	histogramBins, err := parseHistogramBins()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CatalogPath:     envOrDefault("VOLCANO_CSV_PATH", "volcanoes.csv"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		HistogramBins:   histogramBins,
	}

	if cfg.CatalogPath == "" {
		return nil, errors.New("VOLCANO_CSV_PATH is required")
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}

	return cfg, nil
}

// envOrDefault returns the value of the environment variable or the fallback
// when unset. An explicitly empty value counts as set.
func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func parseHistogramBins() (int, error) {
	s := envOrDefault("HISTOGRAM_BINS", "25")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 500 {
		return 0, fmt.Errorf("invalid HISTOGRAM_BINS %q: must be an integer in [1, 500]", s)
	}
	return n, nil
}
