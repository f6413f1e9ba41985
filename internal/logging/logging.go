package logging

import (
	"log/slog"
	"os"
)

// Init configures the default logger. Progress and status messages are logged
// at info; verbose mode adds per-reference debug detail.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
