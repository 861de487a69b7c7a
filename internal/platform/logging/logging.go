package logging

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "motor-portal"

func New(env string) *slog.Logger {
	return NewTo(os.Stdout, env)
}

// NewTo builds the service logger writing to w: JSON in production,
// debug-level text everywhere else.
func NewTo(w io.Writer, env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case "prod", "production":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
	}

	return slog.New(handler).With("service", serviceName, "env", env)
}
