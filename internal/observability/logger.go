package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/volcano-dashboard/internal/config"
)

// NewLogger builds the service logger from config. LOG_FORMAT selects text
// or JSON output (JSON by default); unknown LOG_LEVEL values fall back to
// info rather than failing startup.
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
