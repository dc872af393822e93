package logger

import (
	"log/slog"
	"os"
)

// Log is safe to use before Init; Init replaces it with the configured
// handler.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the global JSON logger. Level defaults to info and can be
// lowered via LOG_LEVEL=debug for local troubleshooting.
func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
