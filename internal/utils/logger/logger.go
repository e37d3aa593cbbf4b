package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/config"
)

// New creates a slog.Logger tuned for the given environment:
// pretty text output with debug level for local development,
// JSON output for dev and prod.
func New(env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case config.EnvLocal:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	case config.EnvDev:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return slog.New(handler)
}
